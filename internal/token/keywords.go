package token

// keyword pairs a keyword's spelling with its Kind. The table is grouped by
// first letter, mirroring the per-letter
// sub-range table the lexer's keyword lookup was ported from: scanning only
// begins once the identifier's first byte and length are known, so only a
// handful of candidates are ever compared.
type keyword struct {
	text string
	kind Kind
}

// keywordsByFirstByte maps the first byte of an identifier to the slice of
// keywords that could possibly match it. Identifiers longer than
// MaxKeywordLength, or whose first byte has no entry here, are never
// keywords and skip this lookup entirely.
var keywordsByFirstByte = map[byte][]keyword{
	'a': {
		{"as", AS},
		{"alignof", ALIGNOF},
		{"asm", ASM},
	},
	'b': {
		{"break", BREAK},
	},
	'c': {
		{"continue", CONTINUE},
		{"context", CONTEXT},
	},
	'd': {
		{"defer", DEFER},
		{"distinct", DISTINCT},
	},
	'e': {
		{"else", ELSE},
		{"enum", ENUM},
	},
	'f': {
		{"for", FOR},
		{"foreign", FOREIGN},
		{"fallthrough", FALLTHROUGH},
	},
	'i': {
		{"if", IF},
		{"in", IN},
		{"import", IMPORT},
	},
	'm': {
		{"mut", MUT},
		{"match", MATCH},
		{"map", MAP},
	},
	'n': {
		{"new", NEW},
	},
	'o': {
		{"own", OWN},
		{"or", OR},
		{"offsetof", OFFSETOF},
	},
	'r': {
		{"return", RETURN},
	},
	's': {
		{"struct", STRUCT},
		{"sizeof", SIZEOF},
	},
	't': {
		{"typeof", TYPEOF},
	},
	'u': {
		{"using", USING},
		{"union", UNION},
		{"undef", UNDEF},
	},
	'w': {
		{"where", WHERE},
		{"when", WHEN},
	},
}

// LookupKeyword returns the Kind for text if it is one of the closed
// keyword set, and IDENTIFIER otherwise. Callers should only call this for
// identifiers of length <= MaxKeywordLength; longer text can never match.
func LookupKeyword(text string) Kind {
	if len(text) == 0 || len(text) > MaxKeywordLength {
		return IDENTIFIER
	}
	candidates, ok := keywordsByFirstByte[text[0]]
	if !ok {
		return IDENTIFIER
	}
	for _, kw := range candidates {
		if kw.text == text {
			return kw.kind
		}
	}
	return IDENTIFIER
}
