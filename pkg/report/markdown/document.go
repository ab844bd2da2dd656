package markdown

import (
	"fmt"
	"strings"
)

// block is one typed piece of a document
type block interface {
	render() string
}

type heading struct {
	level int
	text  string
}

func (h heading) render() string {
	return strings.Repeat("#", h.level) + " " + h.text
}

type numberedList struct {
	marker string
	items  []string
}

func (l numberedList) render() string {
	lines := make([]string, len(l.items))
	for i, item := range l.items {
		lines[i] = fmt.Sprintf("%d. %s %s", i+1, l.marker, item)
	}
	return strings.Join(lines, "\n")
}

type banner struct {
	text string
}

func (b banner) render() string {
	return "> " + b.text
}

type raw struct {
	text string
}

func (r raw) render() string {
	return r.text
}

// document collects blocks in order and joins them with blank lines.
type document struct {
	blocks []block
}

func (d *document) heading(level int, text string) *document {
	return d.add(heading{level: level, text: text})
}

func (d *document) list(marker string, items []string) *document {
	if len(items) == 0 {
		return d
	}
	return d.add(numberedList{marker: marker, items: items})
}

func (d *document) banner(text string) *document {
	return d.add(banner{text: text})
}

func (d *document) raw(text string) *document {
	if text == "" {
		return d
	}
	return d.add(raw{text: text})
}

func (d *document) add(b block) *document {
	d.blocks = append(d.blocks, b)
	return d
}

func (d *document) String() string {
	parts := make([]string, len(d.blocks))
	for i, b := range d.blocks {
		parts[i] = strings.TrimRight(b.render(), "\n")
	}
	return strings.Join(parts, "\n\n") + "\n"
}
