package model

// SmellGranularity distinguishes the two Designite exports.
type SmellGranularity int

const (
	DesignSmell SmellGranularity = iota
	ImplementationSmell
)

func (g SmellGranularity) String() string {
	switch g {
	case DesignSmell:
		return "Design"
	case ImplementationSmell:
		return "Implementation"
	default:
		return "Unknown"
	}
}

// CodeSmell lists where one smell category occurs. Occurrences are class
// identifiers for design smells and class identifiers suffixed with the
// method name for implementation smells.
type CodeSmell struct {
	Name        string
	Occurrences []string
}

// CodeSmells is the parsed content of both Designite exports.
type CodeSmells struct {
	Design         []CodeSmell
	Implementation []CodeSmell
}
