package rest

// Query-string parameters, decoded with gorilla/schema.

type checkQuery struct {
	Number string `schema:"number"`
}

type closestQuery struct {
	Number string `schema:"number"`
	Count  int    `schema:"count"`
}

type samplesQuery struct {
	N int `schema:"n"`
}

// Responses.

type HealthResponse struct {
	Status string `json:"status"`
}

type CheckResponse struct {
	Number uint64 `json:"number"`
	Prime  bool   `json:"prime"`
	Source string `json:"source"`
}

type MatchJSON struct {
	Prime    uint64 `json:"prime"`
	Distance uint64 `json:"distance"`
}

type ClosestResponse struct {
	Number  uint64      `json:"number"`
	Count   int         `json:"count"`
	Matches []MatchJSON `json:"matches"`
}

// PlateSearchRequest is the JSON body of a plate search. Count bounds
// the closest primes returned per part.
type PlateSearchRequest struct {
	Part1 string `json:"part1"`
	Part2 string `json:"part2"`
	Count int    `json:"count"`
}

type PlateMatch struct {
	Prime       uint64 `json:"prime"`
	PrimeBase36 string `json:"primeBase36"`
	Distance    uint64 `json:"distance"`
}

type PartResult struct {
	Original      string       `json:"original"`
	Base10        uint64       `json:"base10"`
	HasLetters    bool         `json:"hasLetters"`
	IsPrime       bool         `json:"isPrime"`
	ClosestPrimes []PlateMatch `json:"closestPrimes"`
}

// PlateCombination pairs one candidate prime per part. The plate field
// renders each prime in its part's original alphabet.
type PlateCombination struct {
	Plate         string `json:"plate"`
	Part1Prime    uint64 `json:"part1Prime"`
	Part2Prime    uint64 `json:"part2Prime"`
	TotalDistance uint64 `json:"totalDistance"`
}

type PlateSearchResponse struct {
	Parts        []PartResult       `json:"parts"`
	Combinations []PlateCombination `json:"combinations,omitempty"`
}

type SamplePlate struct {
	Prime uint64 `json:"prime"`
	Plate string `json:"plate"`
}

type SamplesResponse struct {
	Plates []SamplePlate `json:"plates"`
}

type TokenRequest struct {
	Password string `json:"password"`
}

type TokenResponse struct {
	Token     string `json:"token"`
	TokenType string `json:"tokenType"`
	ExpiresIn int    `json:"expiresIn"`
}
