//go:build linux

package usbid

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/ardnew/usbdesc/pkg"
)

// DefaultPaths lists the standard locations for the USB ID database.
var DefaultPaths = []string{
	"/usr/share/hwdata/usb.ids",
	"/var/lib/usbutils/usb.ids",
	"/usr/share/misc/usb.ids",
}

// Database caches vendor, product, and class names from the USB ID database.
type Database struct {
	vendors    map[uint16]string // VID -> vendor name
	products   map[uint32]string // (VID<<16)|PID -> product name
	classes    map[uint8]string  // class code -> class name
	subclasses map[uint16]string // (class<<8)|subclass -> subclass name
	protocols  map[uint32]string // (class<<16)|(subclass<<8)|protocol -> protocol name
	loaded     bool
	mu         sync.RWMutex
	paths      []string
}

// New creates a new USB ID database that searches the default paths.
func New() *Database {
	return NewWithPaths(DefaultPaths)
}

// NewWithPaths creates a new USB ID database that searches the specified paths.
func NewWithPaths(paths []string) *Database {
	return &Database{
		vendors:    make(map[uint16]string),
		products:   make(map[uint32]string),
		classes:    make(map[uint8]string),
		subclasses: make(map[uint16]string),
		protocols:  make(map[uint32]string),
		paths:      paths,
	}
}

// Load parses the USB ID database file. This method is idempotent - subsequent
// calls do nothing if the database is already loaded.
//
// Returns true if the database was loaded (or already loaded), false if no
// database file could be found.
func (db *Database) Load() bool {
	db.mu.Lock()
	defer db.mu.Unlock()

	if db.loaded {
		return true
	}

	for _, path := range db.paths {
		file, err := os.Open(path)
		if err != nil {
			continue
		}
		db.parse(file)
		file.Close()
		db.loaded = true
		pkg.LogDebug(pkg.ComponentUSBID, "usb.ids database loaded",
			"path", path,
			"vendors", len(db.vendors),
			"products", len(db.products),
			"classes", len(db.classes))
		return true
	}

	// Mark as loaded even if file not found to prevent repeated searches
	db.loaded = true
	return false
}

// Record sections of the database format. Vendor blocks and class blocks
// are indexed; the remaining sections (audio terminals, HID descriptor
// types, languages, and so on) are skipped.
const (
	sectionNone = iota
	sectionVendor
	sectionClass
)

// parse reads the USB ID database format: unindented records open a vendor
// or class block, records indented by one or two tabs belong to the
// innermost open block. Lines that do not parse are skipped, never fatal.
func (db *Database) parse(r io.Reader) {
	scanner := bufio.NewScanner(r)
	section := sectionNone
	var vid uint16
	var class, subclass uint8

	for scanner.Scan() {
		line := scanner.Text()

		// Skip empty lines and comments
		if len(line) == 0 || line[0] == '#' {
			continue
		}

		if line[0] != '\t' {
			if rest, ok := strings.CutPrefix(line, "C "); ok {
				id, name, ok := hexField(rest, 2)
				if !ok {
					section = sectionNone
					continue
				}
				class = uint8(id)
				section = sectionClass
				if name != "" {
					db.classes[class] = name
				}
				continue
			}
			id, name, ok := hexField(line, 4)
			if !ok {
				// Some other section header (AT, HID, HUT, L, ...)
				section = sectionNone
				continue
			}
			vid = uint16(id)
			section = sectionVendor
			if name != "" {
				db.vendors[vid] = name
			}
			continue
		}

		depth := 1
		if len(line) > 1 && line[1] == '\t' {
			depth = 2
		}
		body := line[depth:]

		switch section {
		case sectionVendor:
			// Two tabs under a vendor name an interface of the product
			// above, which this index does not track.
			if depth != 1 {
				continue
			}
			if id, name, ok := hexField(body, 4); ok && name != "" {
				db.products[(uint32(vid)<<16)|uint32(id)] = name
			}
		case sectionClass:
			id, name, ok := hexField(body, 2)
			if !ok || name == "" {
				continue
			}
			if depth == 1 {
				subclass = uint8(id)
				db.subclasses[(uint16(class)<<8)|uint16(subclass)] = name
			} else {
				db.protocols[(uint32(class)<<16)|(uint32(subclass)<<8)|uint32(id)] = name
			}
		}
	}
}

// hexField splits a record into its fixed-width hexadecimal ID and the name
// after the separating spaces. The ID must parse for the record to count;
// a record without a name keeps its ID so the block it opens stays current.
func hexField(s string, width int) (uint64, string, bool) {
	if len(s) < width {
		return 0, "", false
	}
	id, err := strconv.ParseUint(s[:width], 16, width*4)
	if err != nil {
		return 0, "", false
	}
	if len(s) <= width || s[width] != ' ' {
		return id, "", true
	}
	return id, strings.TrimLeft(s[width+1:], " "), true
}

// VendorName returns the name registered for a vendor ID. The second return
// value reports whether the database names the vendor.
func (db *Database) VendorName(vid uint16) (string, bool) {
	db.mu.RLock()
	defer db.mu.RUnlock()
	name, ok := db.vendors[vid]
	return name, ok
}

// ProductName returns the name registered for a VID/PID combination.
func (db *Database) ProductName(vid, pid uint16) (string, bool) {
	db.mu.RLock()
	defer db.mu.RUnlock()
	name, ok := db.products[(uint32(vid)<<16)|uint32(pid)]
	return name, ok
}

// ClassName returns the name of a device or interface class code.
func (db *Database) ClassName(class uint8) (string, bool) {
	db.mu.RLock()
	defer db.mu.RUnlock()
	name, ok := db.classes[class]
	return name, ok
}

// SubclassName returns the name of a subclass within a class.
func (db *Database) SubclassName(class, subclass uint8) (string, bool) {
	db.mu.RLock()
	defer db.mu.RUnlock()
	name, ok := db.subclasses[(uint16(class)<<8)|uint16(subclass)]
	return name, ok
}

// ProtocolName returns the name of a protocol within a class and subclass.
func (db *Database) ProtocolName(class, subclass, protocol uint8) (string, bool) {
	db.mu.RLock()
	defer db.mu.RUnlock()
	name, ok := db.protocols[(uint32(class)<<16)|(uint32(subclass)<<8)|uint32(protocol)]
	return name, ok
}

// IsLoaded returns true if the database has been loaded (or load was attempted).
func (db *Database) IsLoaded() bool {
	db.mu.RLock()
	defer db.mu.RUnlock()
	return db.loaded
}

// VendorCount returns the number of vendors in the database.
func (db *Database) VendorCount() int {
	db.mu.RLock()
	defer db.mu.RUnlock()
	return len(db.vendors)
}

// ProductCount returns the number of products in the database.
func (db *Database) ProductCount() int {
	db.mu.RLock()
	defer db.mu.RUnlock()
	return len(db.products)
}

// ClassCount returns the number of classes in the database.
func (db *Database) ClassCount() int {
	db.mu.RLock()
	defer db.mu.RUnlock()
	return len(db.classes)
}
