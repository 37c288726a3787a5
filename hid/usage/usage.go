package usage

import "fmt"

// Usage packs a usage page and usage ID into the 32-bit extended form used
// by report descriptors: page in the high 16 bits, ID in the low 16 bits.
type Usage uint32

// New packs a page and ID into a Usage.
func New(page, id uint16) Usage {
	return Usage(uint32(page)<<16 | uint32(id))
}

// Page returns the usage page from the high 16 bits.
func (u Usage) Page() uint16 {
	return uint16(u >> 16)
}

// ID returns the usage ID from the low 16 bits.
func (u Usage) ID() uint16 {
	return uint16(u)
}

// String renders the usage as "page:id", substituting table names where
// known and hexadecimal values where not.
func (u Usage) String() string {
	page, id := u.Page(), u.ID()
	pageName, ok := PageName(page)
	if !ok {
		return fmt.Sprintf("0x%04X:0x%04X", page, id)
	}
	name, ok := Name(page, id)
	if !ok {
		return fmt.Sprintf("%s:0x%04X", pageName, id)
	}
	return fmt.Sprintf("%s:%s", pageName, name)
}

// PageName returns the name of a usage page. Vendor-defined pages (0xFF00
// and above) are named with their page value. The second return value
// reports whether the page is known.
func PageName(page uint16) (string, bool) {
	if name, ok := pageNames[page]; ok {
		return name, true
	}
	if page >= PageVendorDefinedMin {
		return fmt.Sprintf("Vendor Defined 0x%04X", page), true
	}
	return "", false
}

// Name returns the name of a usage ID within a page.
//
// Button and Ordinal usages are named procedurally from the ID; the other
// supported pages are table lookups. The second return value reports
// whether a name is defined for the pair.
func Name(page, id uint16) (string, bool) {
	switch page {
	case PageButton:
		if id == 0 {
			return "No Button", true
		}
		return fmt.Sprintf("Button %d", id), true
	case PageOrdinal:
		if id == 0 {
			return "", false
		}
		return fmt.Sprintf("Instance %d", id), true
	case PageKeyboard:
		return keyboardName(id)
	}
	if names, ok := usageNames[page]; ok {
		if name, ok := names[id]; ok {
			return name, true
		}
	}
	return "", false
}
