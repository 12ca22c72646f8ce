package pnptex

import (
	"fmt"
	"strings"
)

// sanitizePath prepares a filesystem path for embedding in LaTeX:
// directory separators become forward slashes and spaces are escaped,
// since graphicx treats raw spaces as argument separators. Applied to
// every embedded path, never to display text.
func sanitizePath(p string) string {
	p = strings.ReplaceAll(p, `\`, "/")
	p = strings.ReplaceAll(p, " ", `\ `)
	return p
}

// documentHeader emits the preamble: landscape article on the configured
// paper, image support with space-tolerant file names, and no page
// numbering.
func documentHeader(cfg LayoutConfig) string {
	paper := "a4paper"
	if cfg.isLetter() {
		paper = "letterpaper"
	}
	return `\documentclass[12pt,` + paper + `,notitlepage,landscape]{article}
\usepackage{graphicx}
\usepackage{subcaption}
\usepackage{pdflscape}
\usepackage[space]{grffile}

\pagenumbering{gobble}

\addtolength{\topmargin}{-3.4cm}
\begin{document}

`
}

// documentTrailer closes the document.
func documentTrailer() string {
	return `\end{document}`
}

// abilityCardPage emits one sheet of ability cards: up to two rows of
// CardsPerLine cards at the bleed-dependent width, centered, followed by
// a page break.
func abilityCardPage(paths []string, cfg LayoutConfig) string {
	var buf strings.Builder

	buf.WriteString(`\begin{figure}[ht]
  \centering
\setkeys{Gin}{width=` + cfg.abilityCardWidth() + `}
\makebox[1\textwidth]{
`)

	perLine := cfg.CardsPerLine()
	for i, p := range paths {
		buf.WriteString(`   \includegraphics{` + sanitizePath(p) + `}`)
		if i != len(paths)-1 && i != perLine-1 {
			buf.WriteString("\\hspace{0cm}%\n")
		}
		if i == perLine-1 {
			buf.WriteString("\n}\n\\makebox[\\textwidth]{\n")
		}
	}

	buf.WriteString(`
}
\end{figure}

\clearpage

`)
	return buf.String()
}

// amdCardPage emits one sheet of AMD-size cards: two rows of five at
// 4.4cm, rotated 90 degrees when configured. When tokenPath is set (the
// final sheet of the section), a third row of five token pairs is
// appended, each pair one normal and one horizontally mirrored copy.
func amdCardPage(paths []string, tokenPath string, cfg LayoutConfig) string {
	var buf strings.Builder

	buf.WriteString(`\begin{figure}[ht]
  \centering
\makebox[1\textwidth]{
`)

	rotation := ""
	if cfg.RotateSmallCards {
		rotation = "angle=90, "
	}
	for i, p := range paths {
		buf.WriteString(`  \includegraphics[` + rotation + `width=` + amdCardWidth + `]{` + sanitizePath(p) + `}`)
		if i != len(paths)-1 && i != amdCardsPerRow-1 {
			buf.WriteString("\\hspace{0cm}%\n")
		}
		if i == amdCardsPerRow-1 {
			buf.WriteString("\n}\n\\makebox[\\textwidth]{\n")
		}
	}

	if tokenPath != "" {
		token := sanitizePath(tokenPath)
		buf.WriteString("\n}\n\\makebox[1\\textwidth]{\n")
		for i := 0; i < tokenPairsPerSheet; i++ {
			buf.WriteString(`  \includegraphics[width=` + tokenWidth + `]{` + token + `}`)
			buf.WriteString("\\hspace{0cm}%\n")
			buf.WriteString(`  \scalebox{-1}[1]{\includegraphics[width=` + tokenWidth + `]{` + token + `}}`)
			if i != tokenPairsPerSheet-1 {
				buf.WriteString("\\hspace{0cm}%\n")
			}
		}
	}

	buf.WriteString(`
}
\end{figure}

\clearpage

`)
	return buf.String()
}

// characterMatPages emits two sheets: the mat front with the mini below
// it, then the mat back with the mini horizontally mirrored so the
// folded stand lines up.
func characterMatPages(matFront, matBack, mini string) string {
	front := sanitizePath(matFront)
	back := sanitizePath(matBack)
	standee := sanitizePath(mini)

	return fmt.Sprintf(`\begin{figure}[ht]
\centering
\makebox[1\textwidth]{
\includegraphics[width=%s,height=%s]{%s}\hspace{0cm}%%
}
\makebox[1\textwidth]{
\includegraphics[width=%s]{%s}
}
\end{figure}

\clearpage

\begin{figure}[ht]
\centering
\makebox[1\textwidth]{
\includegraphics[width=%s,height=%s]{%s}%%
}
\makebox[1\textwidth]{
\scalebox{-1}[1]{\includegraphics[width=%s]{%s}}\hspace{0cm}%%
}
\end{figure}

\clearpage

`, matWidth, matHeight, front, miniWidth, standee,
		matWidth, matHeight, back, miniWidth, standee)
}

// characterSheetPages emits the character sheet twice per sheet (two
// copies side by side), on two sheets. Front and back use the same
// imagery for now; dedicated back art can slot in later without a
// layout change.
func characterSheetPages(sheet string) string {
	page := fmt.Sprintf(`\clearpage

\begin{figure}[ht]
\centering
\makebox[1\textwidth]{
\includegraphics[height=%s]{%s}\hspace{0cm}%%
\includegraphics[height=%s]{%s}
}
\end{figure}

`, sheetHeight, sanitizePath(sheet), sheetHeight, sanitizePath(sheet))
	return page + page
}
