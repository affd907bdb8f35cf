package leakage

// digitWords maps spoken Vietnamese digit words, diacritics already
// stripped, to the digit they stand for. The mapping is deliberately lossy:
// "tu" can mean 4 (tư) or be a fragment of something else entirely, "nam"
// is both 5 (năm) and the word for year. Decoded digits only ever feed
// length and prefix checks, never a dialer, so collisions cost a little
// precision in exchange for catching spelled-out numbers.
var digitWords = map[string]byte{
	"khong": '0',
	"mot":   '1',
	"hai":   '2',
	"ba":    '3',
	"bon":   '4',
	"tu":    '4',
	"nam":   '5',
	"lam":   '5',
	"sau":   '6',
	"bay":   '7',
	"tam":   '8',
	"chin":  '9',
}
