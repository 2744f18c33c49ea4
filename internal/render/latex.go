// Package render produces the LaTeX author blocks, institute blocks and
// acknowledgement sections for the supported journal styles.
package render

import "strings"

// accentReplacer maps accented letters to their LaTeX escape sequences.
var accentReplacer = strings.NewReplacer(
	"é", `\'e`, "è", "\\`e", "ê", `\^e`, "ë", `\"e`,
	"à", "\\`a", "â", `\^a`, "á", `\'a`, "ä", `\"a`, "ã", `\~a`,
	"ç", `\c{c}`,
	"ù", "\\`u", "û", `\^u`, "ú", `\'u`, "ü", `\"u`,
	"ô", `\^o`, "ó", `\'o`, "ö", `\"o`, "õ", `\~o`,
	"î", `\^i`, "ï", `\"i`, "í", `\'i`,
	"ñ", `\~n`,
	"ÿ", `\"y`,
	"É", `\'E`, "È", "\\`E", "Ê", `\^E`, "Ë", `\"E`,
	"À", "\\`A", "Â", `\^A`, "Á", `\'A`, "Ä", `\"A`, "Ã", `\~A`,
	"Ç", `\c{C}`,
	"Ù", "\\`U", "Û", `\^U`, "Ú", `\'U`, "Ü", `\"U`,
	"Ô", `\^O`, "Ó", `\'O`, "Ö", `\"O`, "Õ", `\~O`,
	"Î", `\^I`, "Ï", `\"I`, "Í", `\'I`,
	"Ñ", `\~N`,
	"Ÿ", `\"Y`,
)

// LatexifyAccents replaces accented letters with their LaTeX escapes.
func LatexifyAccents(s string) string {
	return accentReplacer.Replace(s)
}

// SafeLatex escapes literal ampersands. Already-escaped "\&" sequences are
// left alone because only the bare " & " form is rewritten.
func SafeLatex(s string) string {
	return strings.ReplaceAll(s, " & ", ` \& `)
}

// CollapseSpaces collapses runs of repeated spaces. Newlines are preserved.
func CollapseSpaces(s string) string {
	for strings.Contains(s, "  ") {
		s = strings.ReplaceAll(s, "  ", " ")
	}
	return s
}

// Document assembles the final .tex payload from the rendered author block
// and acknowledgement block, applying the LaTeX hygiene passes.
func Document(authorBlock, ackBlock string) string {
	out := authorBlock + "\n\n" + ackBlock
	out = LatexifyAccents(out)
	out = SafeLatex(out)
	return CollapseSpaces(out)
}
