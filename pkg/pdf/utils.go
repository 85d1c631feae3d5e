package pdf

import (
	"math"
	"sort"
)

// Tolerance for floating point comparisons
const FloatTolerance = 0.1

// DeduplicateLines removes duplicate lines based on coordinates
func DeduplicateLines(lines []LineObject) []LineObject {
	if len(lines) == 0 {
		return lines
	}

	// Sort lines for consistent ordering
	sort.Slice(lines, func(i, j int) bool {
		if math.Abs(lines[i].Y0-lines[j].Y0) > FloatTolerance {
			return lines[i].Y0 < lines[j].Y0
		}
		if math.Abs(lines[i].X0-lines[j].X0) > FloatTolerance {
			return lines[i].X0 < lines[j].X0
		}
		if math.Abs(lines[i].Y1-lines[j].Y1) > FloatTolerance {
			return lines[i].Y1 < lines[j].Y1
		}
		return lines[i].X1 < lines[j].X1
	})

	// Remove duplicates
	result := []LineObject{lines[0]}
	for i := 1; i < len(lines); i++ {
		last := result[len(result)-1]
		curr := lines[i]
		
		// Check if lines are essentially the same
		if !linesEqual(last, curr) {
			result = append(result, curr)
		}
	}

	return result
}

// linesEqual checks if two lines are essentially the same
func linesEqual(a, b LineObject) bool {
	// Check both directions (lines might be reversed)
	sameDirection := math.Abs(a.X0-b.X0) < FloatTolerance &&
		math.Abs(a.Y0-b.Y0) < FloatTolerance &&
		math.Abs(a.X1-b.X1) < FloatTolerance &&
		math.Abs(a.Y1-b.Y1) < FloatTolerance

	reversedDirection := math.Abs(a.X0-b.X1) < FloatTolerance &&
		math.Abs(a.Y0-b.Y1) < FloatTolerance &&
		math.Abs(a.X1-b.X0) < FloatTolerance &&
		math.Abs(a.Y1-b.Y0) < FloatTolerance

	return sameDirection || reversedDirection
}

// FilterPageBorderLines removes lines that are at page borders
func FilterPageBorderLines(lines []LineObject, pageWidth, pageHeight float64) []LineObject {
	result := []LineObject{}
	
	for _, line := range lines {
		// Check if line is at page edge (with small tolerance)
		atLeftEdge := math.Abs(line.X0) < 1 && math.Abs(line.X1) < 1
		atRightEdge := math.Abs(line.X0-pageWidth) < 1 && math.Abs(line.X1-pageWidth) < 1
		atTopEdge := math.Abs(line.Y0-pageHeight) < 1 && math.Abs(line.Y1-pageHeight) < 1
		atBottomEdge := math.Abs(line.Y0) < 1 && math.Abs(line.Y1) < 1
		
		// Keep line if it's not at any edge
		if !atLeftEdge && !atRightEdge && !atTopEdge && !atBottomEdge {
			result = append(result, line)
		}
	}
	
	return result
}

// DeduplicateRectangles removes duplicate rectangles
func DeduplicateRectangles(rects []RectObject) []RectObject {
	if len(rects) == 0 {
		return rects
	}

	// Sort rectangles for consistent ordering
	sort.Slice(rects, func(i, j int) bool {
		if math.Abs(rects[i].Y0-rects[j].Y0) > FloatTolerance {
			return rects[i].Y0 < rects[j].Y0
		}
		return rects[i].X0 < rects[j].X0
	})

	// Remove duplicates
	result := []RectObject{rects[0]}
	for i := 1; i < len(rects); i++ {
		last := result[len(result)-1]
		curr := rects[i]
		
		// Check if rectangles are essentially the same
		if !rectsEqual(last, curr) {
			result = append(result, curr)
		}
	}

	return result
}

// rectsEqual checks if two rectangles are essentially the same
func rectsEqual(a, b RectObject) bool {
	return math.Abs(a.X0-b.X0) < FloatTolerance &&
		math.Abs(a.Y0-b.Y0) < FloatTolerance &&
		math.Abs(a.X1-b.X1) < FloatTolerance &&
		math.Abs(a.Y1-b.Y1) < FloatTolerance
}