package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Stock condition of an item.
const (
	ItemTypeOld = "OLD"
	ItemTypeNew = "NEW"
)

// Catalogued material names.
const (
	ItemCement     = "CEMENT"
	ItemSteel      = "STEEL"
	ItemSand       = "SAND"
	ItemAggregate  = "AGGREGATE"
	ItemBricks     = "BRICKS"
	ItemTimber     = "TIMBER"
	ItemPaint      = "PAINT"
	ItemShuttering = "SHUTTERING"
	ItemElectrical = "ELECTRICAL"
	ItemPlumbing   = "PLUMBING"
	ItemOther      = "OTHER"
)

var itemNames = map[string]struct{}{
	ItemCement: {}, ItemSteel: {}, ItemSand: {}, ItemAggregate: {},
	ItemBricks: {}, ItemTimber: {}, ItemPaint: {}, ItemShuttering: {},
	ItemElectrical: {}, ItemPlumbing: {}, ItemOther: {},
}

// ValidItemName reports whether name is a catalogued material.
func ValidItemName(name string) bool {
	_, ok := itemNames[name]
	return ok
}

// ValidItemType reports whether t is OLD or NEW.
func ValidItemType(t string) bool {
	return t == ItemTypeOld || t == ItemTypeNew
}

// InventoryRecord is a per-owner stock record. Quantity never goes below zero
// (also backed by a CHECK constraint in the schema).
type InventoryRecord struct {
	ID           string
	CreatedByID  string // owning store user
	ItemCode     string
	ItemName     string
	ItemType     string // OLD | NEW
	Quantity     int64
	Unit         string
	Cost         decimal.Decimal
	Category     string
	Location     string
	ReorderLevel int64
	SafetyStock  int64
	MaxStock     int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
