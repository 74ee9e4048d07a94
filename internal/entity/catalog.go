package entity

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Category is the server-defined grouping key of the method catalog.
type Category string

const (
	CategoryCard           Category = "card"
	CategoryBankTransfer   Category = "bank_transfer"
	CategoryOnlineBanking  Category = "online_banking"
	CategoryOverTheCounter Category = "over_the_counter"
	CategoryEWallet        Category = "e_wallet"
	CategoryQR             Category = "qr"
)

// KnownCategories in the order the checkout page shows them.
var KnownCategories = []Category{
	CategoryCard,
	CategoryBankTransfer,
	CategoryOnlineBanking,
	CategoryOverTheCounter,
	CategoryEWallet,
	CategoryQR,
}

// Short method ids used by the checkout page buttons.
var methodAliases = map[string]Category{
	"card":   CategoryCard,
	"bank":   CategoryBankTransfer,
	"online": CategoryOnlineBanking,
	"otc":    CategoryOverTheCounter,
	"wallet": CategoryEWallet,
	"qr":     CategoryQR,
}

// ParseCategory accepts both page method ids ("bank") and catalog keys ("bank_transfer").
func ParseCategory(s string) Category {
	if c, ok := methodAliases[s]; ok {
		return c
	}

	return Category(s)
}

func (c Category) String() string {
	return string(c)
}

type EntryStatus string

const (
	EntryStatusEnabled  EntryStatus = "enabled"
	EntryStatusDisabled EntryStatus = "disabled"
)

// ParseEntryStatus maps the backend "on" flag; anything else is disabled.
func ParseEntryStatus(s string) EntryStatus {
	if s == "on" {
		return EntryStatusEnabled
	}

	return EntryStatusDisabled
}

type FeeType string

const (
	FeeTypeFixed   FeeType = "fixed"
	FeeTypePercent FeeType = "percent"
)

// MethodCatalogEntry is one provider offered by a merchant.
type MethodCatalogEntry struct {
	Category     Category
	MethodCode   string
	ProviderCode string
	DisplayName  string
	ShortName    string
	LogoURL      string
	CountryCode  string
	Status       EntryStatus
	FeeValue     decimal.NullDecimal
	FeeType      FeeType
}

// ID identifies the entry inside its category.
func (e MethodCatalogEntry) ID() string {
	return e.ProviderCode
}

func (e MethodCatalogEntry) Enabled() bool {
	return e.Status == EntryStatusEnabled
}

func (e MethodCatalogEntry) Codes() ProviderCodes {
	return ProviderCodes{MethodCode: e.MethodCode, ProviderCode: e.ProviderCode}
}

func (e MethodCatalogEntry) matches(sub string) bool {
	return sub == e.ProviderCode ||
		sub == e.DisplayName ||
		sub == e.MethodCode+"/"+e.ProviderCode
}

// ProviderCodes are the opaque identifiers the backend needs to start a payment.
type ProviderCodes struct {
	MethodCode   string `json:"method_code"`
	ProviderCode string `json:"provider_code"`
}

func (p ProviderCodes) String() string {
	return p.MethodCode + "/" + p.ProviderCode
}

func (p ProviderCodes) IsZero() bool {
	return p.MethodCode == "" || p.ProviderCode == ""
}

type CatalogGroup struct {
	Category Category
	Entries  []MethodCatalogEntry
}

// Catalog is the immutable set of methods a merchant supports, fetched once per checkout.
type Catalog struct {
	Groups []CatalogGroup
}

// CategoryState is what the page needs to draw one method button.
type CategoryState struct {
	Category Category
	Enabled  bool
	Default  string // First enabled entry id, empty when none.
	Entries  []MethodCatalogEntry
}

func (c Catalog) Entries(category Category) []MethodCatalogEntry {
	for _, g := range c.Groups {
		if g.Category == category {
			return g.Entries
		}
	}

	return nil
}

func (c Catalog) HasCategory(category Category) bool {
	for _, g := range c.Groups {
		if g.Category == category {
			return true
		}
	}

	return false
}

// CategoryEnabled reports whether at least one entry of the category is enabled.
func (c Catalog) CategoryEnabled(category Category) bool {
	_, ok := c.FirstEnabled(category)
	return ok
}

func (c Catalog) FirstEnabled(category Category) (MethodCatalogEntry, bool) {
	for _, e := range c.Entries(category) {
		if e.Enabled() {
			return e, true
		}
	}

	return MethodCatalogEntry{}, false
}

func (c Catalog) Categories() []CategoryState {
	res := make([]CategoryState, 0, len(c.Groups))

	for _, g := range c.Groups {
		state := CategoryState{
			Category: g.Category,
			Entries:  g.Entries,
		}

		if first, ok := c.FirstEnabled(g.Category); ok {
			state.Enabled = true
			state.Default = first.ID()
		}

		res = append(res, state)
	}

	return res
}

// Select switches the top-level method and resets the sub-selection to the first
// enabled entry of the new category, or leaves it unresolved when there is none.
func (c Catalog) Select(sel CheckoutSelection, method Category) CheckoutSelection {
	sel.Method = method
	sel.SubSelection = ""

	if first, ok := c.FirstEnabled(method); ok {
		sel.SubSelection = first.ID()
	}

	return sel
}

// Resolve finds the catalog entry a selection points to. Card falls back to
// fallbackCard only when the catalog has no card category at all.
func (c Catalog) Resolve(sel CheckoutSelection, fallbackCard ProviderCodes) (MethodCatalogEntry, error) {
	if sel.Method == CategoryCard && !c.HasCategory(CategoryCard) {
		if fallbackCard.IsZero() {
			return MethodCatalogEntry{}, fmt.Errorf("%w: catalog has no card providers and no fallback is configured", ErrResolution)
		}

		return MethodCatalogEntry{
			Category:     CategoryCard,
			MethodCode:   fallbackCard.MethodCode,
			ProviderCode: fallbackCard.ProviderCode,
			DisplayName:  "Credit/Debit Card",
			Status:       EntryStatusEnabled,
		}, nil
	}

	if sel.SubSelection == "" {
		return MethodCatalogEntry{}, fmt.Errorf("%w: no provider selected for %q", ErrResolution, sel.Method)
	}

	for _, e := range c.Entries(sel.Method) {
		if !e.matches(sel.SubSelection) {
			continue
		}

		if !e.Enabled() {
			return MethodCatalogEntry{}, fmt.Errorf("%w: provider %q of %q is disabled", ErrResolution, sel.SubSelection, sel.Method)
		}

		if e.Codes().IsZero() {
			return MethodCatalogEntry{}, fmt.Errorf("%w: provider %q of %q has empty codes", ErrResolution, sel.SubSelection, sel.Method)
		}

		return e, nil
	}

	return MethodCatalogEntry{}, fmt.Errorf("%w: provider %q not found in %q", ErrResolution, sel.SubSelection, sel.Method)
}

// MethodName searches every category for the code pair; first match wins.
func (c Catalog) MethodName(codes ProviderCodes) string {
	if codes.IsZero() {
		return ""
	}

	for _, g := range c.Groups {
		for _, e := range g.Entries {
			if e.MethodCode == codes.MethodCode && e.ProviderCode == codes.ProviderCode {
				return e.DisplayName
			}
		}
	}

	return ""
}

// CheckoutSelection is the transient user choice on the checkout page.
type CheckoutSelection struct {
	Amount       decimal.Decimal
	Method       Category
	SubSelection string
}
