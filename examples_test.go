package qubittext

import (
	"fmt"
)

func Example() {
	alpha, err := ParseAlphabet("a,b,c,space")
	if err != nil {
		panic(err)
	}
	packed, _, err := alpha.Encode("Cab Cab")
	if err != nil {
		panic(err)
	}
	fmt.Println(FormatHex(packed))

	text, err := alpha.Decode(packed)
	if err != nil {
		panic(err)
	}
	fmt.Println(text)
	// Output:
	// 0x40,0xb4,0x0c
	// cab cab
}
