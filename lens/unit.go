package lens

// Unit is the payload type of payload-less union cases.
type Unit struct{}

// unitValue is the process-wide sentinel every payload-less case extractor
// points at.
var unitValue Unit

// UnitRef returns the shared unit sentinel. Generated extractors for
// payload-less cases return this pointer on a tag match.
func UnitRef() *Unit {
	return &unitValue
}
