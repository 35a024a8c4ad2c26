package main

import (
	"encoding/hex"
	"fmt"
	"log"
	"strings"

	"github.com/protowire/protowire"
	"github.com/protowire/protowire/wire"
)

// Field numbers for the message this example builds. There is no .proto
// file backing them; naming them as constants here is the whole point
// of a schema-free builder.
const (
	fieldID      wire.FieldNumber = 1
	fieldName    wire.FieldNumber = 2
	fieldActive  wire.FieldNumber = 3
	fieldTags    wire.FieldNumber = 4
	fieldScores  wire.FieldNumber = 5
	fieldAddress wire.FieldNumber = 6
)

const (
	addressStreet wire.FieldNumber = 1
	addressCity   wire.FieldNumber = 2
)

func buildAddress() []byte {
	buf := wire.NewBuffer()
	b := protowire.NewBuilder(buf)
	must(b.EmitString(addressStreet, "123 Main St"))
	must(b.EmitString(addressCity, "Springfield"))
	return buf.Bytes()
}

func buildUser() []byte {
	buf := wire.NewBuffer()
	b := protowire.NewBuilder(buf)

	must(b.EmitInt32(fieldID, 1))
	must(b.EmitString(fieldName, "John Doe"))
	must(b.EmitBool(fieldActive, true))
	must(b.EmitStringRepeated(fieldTags, []string{"go", "protobuf", "wire-format"}))
	must(b.EmitInt32Packed(fieldScores, []int32{98, 87, 91}))
	must(b.EmitSubmessage(fieldAddress, buildAddress()))

	return buf.Bytes()
}

func must(err error) {
	if err != nil {
		log.Fatalf("building message: %v", err)
	}
}

func main() {
	fmt.Println("protowire example: building a message with no schema")
	fmt.Println(strings.Repeat("=", 60))

	data := buildUser()

	fmt.Printf("encoded %d bytes:\n%s\n", len(data), hex.EncodeToString(data))
}
