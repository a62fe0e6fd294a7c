package loader

import (
	"strings"
)

var candidateDelimiters = []rune{',', ';', '\t', '|'}

// sniffLines is how many leading lines are inspected
const sniffLines = 20

// SniffDelimiter guesses the delimiter of a delimited text. A candidate wins
// when it appears the same non-zero number of times on every inspected line;
// ties go to the higher count. Without a consistent candidate the one most
// frequent in the header is used, defaulting to a comma.
func SniffDelimiter(text string) rune {
	lines := leadingLines(text, sniffLines)
	if len(lines) == 0 {
		return ','
	}

	best, bestCount := rune(0), 0
	for _, d := range candidateDelimiters {
		count := countOutsideQuotes(lines[0], d)
		if count == 0 {
			continue
		}
		consistent := true
		for _, line := range lines[1:] {
			if countOutsideQuotes(line, d) != count {
				consistent = false
				break
			}
		}
		if consistent && count > bestCount {
			best, bestCount = d, count
		}
	}
	if best != 0 {
		return best
	}

	best, bestCount = ',', 0
	for _, d := range candidateDelimiters {
		if count := countOutsideQuotes(lines[0], d); count > bestCount {
			best, bestCount = d, count
		}
	}
	return best
}

func leadingLines(text string, limit int) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
		if len(lines) == limit {
			break
		}
	}
	return lines
}

func countOutsideQuotes(line string, d rune) int {
	count := 0
	inQuotes := false
	for _, r := range line {
		switch {
		case r == '"':
			inQuotes = !inQuotes
		case r == d && !inQuotes:
			count++
		}
	}
	return count
}
