package registry

// Status is the lifecycle position of an asset record.
type Status int

const (
	StatusCreated Status = iota
	StatusMinted
	StatusForSale
	StatusSold
)

func (s Status) String() string {
	switch s {
	case StatusCreated:
		return "created"
	case StatusMinted:
		return "minted"
	case StatusForSale:
		return "forsale"
	case StatusSold:
		return "sold"
	default:
		return "unknown"
	}
}

// transitions is the complete set of legal status moves. A sold record may
// be relisted by its new owner, so Sold is re-enterable via ForSale. There
// is no path out of ForSale except a completed sale: delisting does not
// exist.
var transitions = map[Status][]Status{
	StatusCreated: {StatusMinted},
	StatusMinted:  {StatusForSale},
	StatusForSale: {StatusSold},
	StatusSold:    {StatusForSale},
}

// canTransition is consulted by every mutating operation before it touches
// a record.
func canTransition(from, to Status) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
