package hashing

// engineTag is the only revision every engine is required to understand.
var engineTag = Algorithm2b.Tag()

// Normalize maps a salt field onto the revision understood by the digest
// engine. A $2y$ tag is rewritten to $2b$; every other input is returned
// unchanged. originalTag is the tag the caller supplied and must be put back
// on the formatted result so the stored revision is preserved.
//
// For ASCII passwords 2y and 2b produce identical digests, which is what
// makes the substitution safe.
func Normalize(saltField string) (originalTag, engineSalt string) {
	if len(saltField) < TagLength {
		return saltField, saltField
	}
	originalTag = saltField[:TagLength]
	if originalTag == Algorithm2y.Tag() {
		return originalTag, engineTag + saltField[TagLength:]
	}
	return originalTag, saltField
}
