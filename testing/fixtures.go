package testing

import (
	"testing"

	"github.com/gocarina/gocsv"
	"github.com/stretchr/testify/require"
)

// Fixture is a single known-good encoding.
type Fixture struct {
	Name string `csv:"name"`
	// Text is the input to the encoder.
	Text string `csv:"text"`
	// Packed is the hex-encoded artifact for Text.
	Packed string `csv:"packed"`
	// Decoded is what the decoder gives back for Packed, with trailing
	// whitespace removed. It differs from Text when the input has upper case
	// letters or characters sharing an encoding, like ů and ú.
	Decoded string `csv:"decoded"`
}

const fixturesCSV = `name,text,packed,decoded
empty,,00000000f0,
hello world,hello world,ef82c758410000e00993,hello world
punctuation,"ahoj, jak se máš.",4181ae1e0a61375026580000dffbdc,"ahoj, jak se máš."
carons,čeřící se moře,236db9cbd8af813241da0000e08bdc,čeřící se moře
period inside,dobrý den. jsem rád,04e42dc523652ad0bb2bc093b02568,dobrý den. jsem rád
adjacent accents,ěš,00003f77d9,ěš
acute e,mléko,feadb2376b,mléko
chord,a#b,0000e0050f,ab
newlines,"line one
line two",c53d505c629782e212f3000000807f,"line one
line two"
u ring,úterý a ůl,206f5968dd0078563708,úterý a úl
citizens,i am very proud of my country and its citizens,b258d0024880d42721c86f80dc80792e802ca9ab6980491320c04f5774a2,i am very proud of my country and its citizens
`

// LoadFixtures returns the table of known-good encodings.
func LoadFixtures(t *testing.T) []Fixture {
	var fixtures []Fixture
	err := gocsv.UnmarshalString(fixturesCSV, &fixtures)
	require.NoError(t, err, "fixture table is malformed")
	require.NotEmpty(t, fixtures)
	return fixtures
}
