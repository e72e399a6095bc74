// SPDX-License-Identifier: Apache-2.0

// Package latex assembles the images under a directory into a LaTeX report
// and typesets it.
package latex

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/simreport/simreport/internal/naming"
	"github.com/simreport/simreport/pkg/logger"
)

// Figure is one included image.
type Figure struct {
	// Include is the path passed to the include command, relative to the
	// report root and slash separated.
	Include string
	Caption string
}

// Document is a report ready to be written.
type Document struct {
	Format   Format
	Sections []DocumentSection
}

// DocumentSection is a Section with its figures resolved.
type DocumentSection struct {
	Title   string
	Root    bool
	Figures []Figure
}

// Build collects the images under root. For SVG reports a uniquely named
// link is created next to every image.
func Build(root string, format Format, l logger.Logger) (*Document, error) {
	sections, err := Collect(root, format)
	if err != nil {
		return nil, fmt.Errorf("collecting images: %w", err)
	}

	doc := &Document{Format: format}
	for _, s := range sections {
		ds := DocumentSection{Title: SectionTitle(s.Rel), Root: s.IsRoot()}
		for _, name := range s.Images {
			f := Figure{Caption: Escape(name)}
			switch format {
			case FormatSVG:
				link, err := EnsureLink(filepath.Join(root, s.Rel), s.Rel, name)
				if err != nil {
					return nil, fmt.Errorf("linking %s: %w", name, err)
				}
				l.Debug("linked svg", "image", filepath.Join(s.Rel, name), "link", link)
				f.Include = path.Join(filepath.ToSlash(s.Rel), strings.TrimSuffix(link, filepath.Ext(link)))
			default:
				f.Include = path.Join(filepath.ToSlash(s.Rel), name)
			}
			ds.Figures = append(ds.Figures, f)
		}
		doc.Sections = append(doc.Sections, ds)
	}
	return doc, nil
}

// SectionTitle strips run timestamps from every component of rel and joins
// them into an escaped section title.
func SectionTitle(rel string) string {
	return Escape(strings.Join(naming.StripPathTimestamps(rel), " - "))
}

// String renders the LaTeX source.
func (d *Document) String() string {
	var b strings.Builder
	for _, line := range d.header() {
		b.WriteString(line)
		b.WriteByte('\n')
	}

	for _, s := range d.Sections {
		if !s.Root {
			b.WriteString("\\newpage\n\n")
			fmt.Fprintf(&b, "\\section{%s}\n", s.Title)
		}
		for i, f := range s.Figures {
			if i > 0 && i%2 == 0 {
				b.WriteString("\\newpage\n")
			}
			b.WriteString("\\begin{figure}[H]\n")
			b.WriteString("\\centering\n")
			b.WriteString(d.include(f.Include))
			b.WriteByte('\n')
			fmt.Fprintf(&b, "\\caption{%s}\n", f.Caption)
			b.WriteString("\\end{figure}\n")
			b.WriteString("\\vspace{1cm}\n")
		}
	}

	b.WriteString("\\end{document}\n")
	return b.String()
}

func (d *Document) include(p string) string {
	if d.Format == FormatSVG {
		return fmt.Sprintf("\\includesvg[width=0.9\\textwidth]{%s}", p)
	}
	return fmt.Sprintf("\\includegraphics[width=0.9\\textwidth, height=0.4\\textheight, keepaspectratio]{%s}", p)
}

func (d *Document) header() []string {
	lines := []string{
		`\documentclass[12pt]{article}`,
		`\usepackage{graphicx}`,
	}
	if d.Format == FormatSVG {
		lines = append(lines, `\usepackage{svg}`)
	} else {
		lines = append(lines, `\usepackage[space]{grffile}`)
	}
	return append(lines,
		`\usepackage[margin=1in]{geometry}`,
		`\usepackage{float}`,
		`\usepackage{hyperref}`,
		`\hypersetup{colorlinks=true, linkcolor=blue, urlcolor=blue}`,
		`\setlength{\parskip}{1em}`,
		`\begin{document}`,
		fmt.Sprintf(`\title{\Large %s Images Collection}`, strings.ToUpper(string(d.Format))),
		`\author{Generated Script}`,
		`\date{\today}`,
		`\maketitle`,
		`\tableofcontents`,
		`\newpage`,
	)
}

// WriteFile writes the document to <root>/<format>_collection.tex and
// returns its path.
func (d *Document) WriteFile(root string) (string, error) {
	p := filepath.Join(root, d.Format.BaseName()+".tex")
	if err := os.WriteFile(p, []byte(d.String()), 0o644); err != nil {
		return "", err
	}
	return p, nil
}
