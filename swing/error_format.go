package swing

import "strings"

const (
	codeFrameWidth = 72
	codeFrameElide = "..."
)

// stringWithArrows renders every source line touched by start..end followed
// by a line of carets under the covered columns.
func stringWithArrows(text string, start, end Position) string {
	if start.Index < 0 {
		start.Index = 0
	}
	if start.Index > len(text) {
		start.Index = len(text)
	}
	lineStart := strings.LastIndexByte(text[:start.Index], '\n') + 1
	lineCount := end.Line - start.Line + 1
	if lineCount < 1 {
		lineCount = 1
	}

	var b strings.Builder
	for i := 0; i < lineCount && lineStart <= len(text); i++ {
		lineEnd := strings.IndexByte(text[lineStart:], '\n')
		if lineEnd < 0 {
			lineEnd = len(text)
		} else {
			lineEnd += lineStart
		}
		line := []rune(strings.ReplaceAll(text[lineStart:lineEnd], "\t", " "))

		colStart := 0
		if i == 0 {
			colStart = start.Column
		}
		colEnd := len(line)
		if i == lineCount-1 {
			colEnd = end.Column
		}
		colStart = min(max(colStart, 0), len(line))
		colEnd = min(max(colEnd, colStart+1), len(line)+1)

		if i > 0 {
			b.WriteByte('\n')
		}
		writeArrowLine(&b, line, colStart, colEnd)
		lineStart = lineEnd + 1
	}
	return b.String()
}

func writeArrowLine(b *strings.Builder, line []rune, colStart, colEnd int) {
	from, to := 0, len(line)
	if len(line) > codeFrameWidth {
		from = max(colStart-codeFrameWidth/3, 0)
		to = min(from+codeFrameWidth, len(line))
		from = max(to-codeFrameWidth, 0)
	}

	pad := colStart - from
	if from > 0 {
		b.WriteString(codeFrameElide)
		pad += len(codeFrameElide)
	}
	b.WriteString(string(line[from:to]))
	if to < len(line) {
		b.WriteString(codeFrameElide)
		colEnd = min(colEnd, to)
	}
	b.WriteByte('\n')
	b.WriteString(strings.Repeat(" ", pad))
	b.WriteString(strings.Repeat("^", max(colEnd-colStart, 1)))
}
