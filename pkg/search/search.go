package search

import (
	"strconv"
	"strings"

	"github.com/ccollicutt/minigrep/pkg/flags"
)

// SplitLines breaks file content into LineRecords in file order.
// Lines end at "\n"; a trailing "\r" is dropped, and a final newline does
// not produce an extra empty record.
func SplitLines(content string) []LineRecord {
	if content == "" {
		return nil
	}

	content = strings.TrimSuffix(content, "\n")
	parts := strings.Split(content, "\n")

	records := make([]LineRecord, len(parts))
	for i, part := range parts {
		records[i] = LineRecord{
			Index: uint(i),
			Text:  strings.TrimSuffix(part, "\r"),
		}
	}
	return records
}

// Search returns the lines containing query, in file order. With
// opts.IgnoreCase both sides are lowercased first. A non-zero opts.MaxCount
// keeps only the first MaxCount matches; an empty query matches every line.
func Search(query string, opts flags.Options, lines []LineRecord) []LineRecord {
	if opts.IgnoreCase {
		query = strings.ToLower(query)
	}

	var matches []LineRecord
	for _, line := range lines {
		if opts.MaxCount != 0 && uint(len(matches)) >= opts.MaxCount {
			break
		}

		text := line.Text
		if opts.IgnoreCase {
			text = strings.ToLower(text)
		}
		if strings.Contains(text, query) {
			matches = append(matches, line)
		}
	}
	return matches
}

// LayoutFor picks the rendering layout for opts.
func LayoutFor(opts flags.Options) Layout {
	if opts.ShowLineNumber {
		return WithLineNumber
	}
	return Plain
}

// Format renders a single record.
func Format(rec LineRecord, layout Layout) string {
	if layout == WithLineNumber {
		return strconv.FormatUint(uint64(rec.Index), 10) + ":" + rec.Text
	}
	return rec.Text
}
