// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qrcard_test

import (
	"fmt"
	"log"

	"github.com/unixdj/qrcard"
)

func ExampleEncode() {
	c, err := qrcard.Encode("HELLO WORLD", qrcard.M)
	if err != nil {
		log.Fatalln(err)
	}
	fmt.Println(c.Version, c.Size, c.Pixels())
	// Output: 1 21 232
}

func ExampleParseLevel() {
	l, err := qrcard.ParseLevel("h")
	fmt.Println(l, err)
	_, err = qrcard.ParseLevel("x")
	fmt.Println(err)
	// Output:
	// H <nil>
	// qr: invalid level: "x"
}
