package item_test

import (
	"fmt"

	"github.com/ardnew/usbdesc/hid/item"
)

func ExampleParser() {
	descriptor := []byte{
		0x05, 0x01, // Usage Page (Generic Desktop)
		0x09, 0x02, // Usage (Mouse)
		0xA1, 0x01, // Collection (Application)
		0x81, 0x02, // Input (Data, Variable, Absolute)
		0xC0, // End Collection
	}

	p := item.NewParser(descriptor)
	for p.Scan() {
		fmt.Println(p.Item())
	}
	if err := p.Err(); err != nil {
		fmt.Println("parse failed:", err)
	}
	// Output:
	// UsagePage(0x1)
	// Usage(0x2)
	// Collection(Application)
	// Input(Data,Var,Abs)
	// EndCollection
}

func ExampleParser_state() {
	descriptor := []byte{
		0x05, 0x01, // Usage Page (Generic Desktop)
		0x09, 0x30, // Usage (X)
		0x09, 0x31, // Usage (Y)
		0x75, 0x08, // Report Size (8)
		0x95, 0x02, // Report Count (2)
		0x81, 0x06, // Input (Data, Variable, Relative)
	}

	p := item.NewParser(descriptor)
	for p.Scan() {
		if p.Item().Tag != item.TagInput {
			continue
		}
		g, l := p.Global(), p.Local()
		fmt.Printf("%d fields of %d bits\n", g.ReportCount, g.ReportSize)
		for _, u := range l.Usages {
			fmt.Println(u)
		}
	}
	// Output:
	// 2 fields of 8 bits
	// Generic Desktop:X
	// Generic Desktop:Y
}
