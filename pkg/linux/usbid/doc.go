//go:build linux

// Package usbid provides access to the USB ID database for naming the
// numeric identifiers found in device descriptors.
//
// The USB ID database is a standard file maintained alongside the usbutils
// project and distributed with most Linux systems. It maps USB vendor IDs
// (VID) and product IDs (PID) to human-readable names, and likewise names
// the class, subclass, and protocol code triples used by device and
// interface descriptors.
//
// This package automatically searches common database locations and provides
// efficient cached lookups. It complements the static name tables compiled
// into this module: class codes a descriptor parser reports numerically can
// be resolved against the system database without shipping the table.
//
// # Usage
//
// Load the database once at startup:
//
//	db := usbid.New()
//	db.Load()
//
// Then look up names for a parsed device descriptor:
//
//	vendor, ok := db.VendorName(desc.VendorID)
//	product, ok := db.ProductName(desc.VendorID, desc.ProductID)
//	class, ok := db.ClassName(desc.DeviceClass)
//
// Each lookup reports whether the database names the value, so absent
// entries are distinguishable from empty names.
//
// # Database Locations
//
// The package searches for the USB ID database in these locations:
//
//   - /usr/share/hwdata/usb.ids
//   - /var/lib/usbutils/usb.ids
//   - /usr/share/misc/usb.ids
//
// # Thread Safety
//
// All methods are safe for concurrent use. The database uses read-write locks
// to allow concurrent lookups while protecting against concurrent loads.
package usbid
