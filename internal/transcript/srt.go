package transcript

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatSRT renders segments as SubRip subtitle text: sequential
// blocks of index, "start --> end" and text, separated by blank
// lines.
func FormatSRT(segments []Segment) string {
	var b strings.Builder
	for i, seg := range segments {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(formatBlock(i, seg))
	}
	return b.String()
}

// formatBlock renders one numbered SRT block. Block numbers are
// 1-based.
func formatBlock(index int, seg Segment) string {
	return fmt.Sprintf("%d\n%s --> %s\n%s\n",
		index+1,
		FormatTimestamp(seg.Start),
		FormatTimestamp(seg.End),
		seg.Text,
	)
}

// FormatTimestamp renders seconds as the SubRip HH:MM:SS,mmm form.
func FormatTimestamp(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}
	totalMillis := int64(seconds*1000 + 0.5)

	hours := totalMillis / 3600000
	minutes := (totalMillis % 3600000) / 60000
	secs := (totalMillis % 60000) / 1000
	millis := totalMillis % 1000

	return fmt.Sprintf("%02d:%02d:%02d,%03d", hours, minutes, secs, millis)
}

// ParseSRT reads SubRip text back into segments. Used when
// re-exporting a previously written subtitle file.
func ParseSRT(text string) ([]Segment, error) {
	var segments []Segment

	blocks := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n\n")
	for _, block := range blocks {
		lines := strings.Split(strings.TrimSpace(block), "\n")
		if len(lines) < 2 || strings.TrimSpace(lines[0]) == "" {
			continue
		}

		// Line 0 is the sequence number, line 1 the time range.
		if _, err := strconv.Atoi(strings.TrimSpace(lines[0])); err != nil {
			return nil, fmt.Errorf("bad srt block index %q", lines[0])
		}

		start, end, err := parseTimeRange(lines[1])
		if err != nil {
			return nil, err
		}

		segments = append(segments, Segment{
			Start: start,
			End:   end,
			Text:  strings.Join(lines[2:], "\n"),
		})
	}

	return segments, nil
}

func parseTimeRange(line string) (start, end float64, err error) {
	parts := strings.Split(line, "-->")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("bad srt time range %q", line)
	}

	start, err = parseTimestamp(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, err
	}
	end, err = parseTimestamp(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, err
	}
	return start, end, nil
}

func parseTimestamp(ts string) (float64, error) {
	clock, millisPart, ok := strings.Cut(ts, ",")
	if !ok {
		return 0, fmt.Errorf("bad srt timestamp %q", ts)
	}

	fields := strings.Split(clock, ":")
	if len(fields) != 3 {
		return 0, fmt.Errorf("bad srt timestamp %q", ts)
	}

	var parts [4]int64
	for i, f := range append(fields, millisPart) {
		v, err := strconv.ParseInt(f, 10, 64)
		if err != nil || v < 0 {
			return 0, fmt.Errorf("bad srt timestamp %q", ts)
		}
		parts[i] = v
	}

	return float64(parts[0]*3600+parts[1]*60+parts[2]) + float64(parts[3])/1000, nil
}
