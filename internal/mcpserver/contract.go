package mcpserver

// EncodingFormatContract describes the delimiter-based encodings used
// by the corpus annotation fields, for LLM consumers reading raw
// carryover or classification strings.
const EncodingFormatContract = `# Corpus Encoding Format

The annotation fields of the sutra corpus use two delimiters: ` + "`##`" + `
separates entries and ` + "`$`" + ` separates fields within an entry.

## Anuvritti (word continuation), field "an"

` + "```" + `
fragment$CQO##fragment$CQO##...
` + "```" + `

` + "`CQO`" + ` is a fused reference: one adhyaya digit, one pada digit, then
the sutra number, run together with no separator and at least five
characters in total. Example: ` + "`11001`" + ` means sutra 1.1.1.

## Adhikara (governing scope), field "ad"

` + "```" + `
fragment$adhyaya$pada$number##fragment$adhyaya$pada$number##...
` + "```" + `

The reference components are written out with explicit separators.

## Type classification, field "type"

` + "```" + `
CODE[$explanation]$##CODE[$explanation]$##...
` + "```" + `

` + "`CODE`" + ` is one of S (sanjna, definition), P (paribhasha, technical
rule), V (vidhi, injunction), AT (atidesha, extension), AD (adhikara,
governing rule). The explanation is optional Sanskrit text.

## Word analysis, field "pc"

` + "```" + `
word$gender$vibhakti$vachana##word$gender$vibhakti$vachana##...
` + "```" + `

Vibhakti (case) runs 1-8 and vachana (number) 1-3; zero in both marks
an avyaya (indeclinable) word.

Malformed entries occur in the hand-authored data and are skipped by
the decoder; the raw field text is always preserved alongside the
decoded references.
`
