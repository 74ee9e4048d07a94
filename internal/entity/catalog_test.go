package entity_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/samandr77/microservices/checkout/internal/entity"
)

func testCatalog() entity.Catalog {
	return entity.Catalog{
		Groups: []entity.CatalogGroup{
			{
				Category: entity.CategoryCard,
				Entries: []entity.MethodCatalogEntry{
					{Category: entity.CategoryCard, MethodCode: "CARD", ProviderCode: "visa", DisplayName: "Visa", Status: entity.EntryStatusEnabled},
				},
			},
			{
				Category: entity.CategoryBankTransfer,
				Entries: []entity.MethodCatalogEntry{
					{Category: entity.CategoryBankTransfer, MethodCode: "BANK", ProviderCode: "bdo", DisplayName: "BDO", Status: entity.EntryStatusDisabled},
					{Category: entity.CategoryBankTransfer, MethodCode: "BANK", ProviderCode: "bpi", DisplayName: "BPI", Status: entity.EntryStatusEnabled},
					{Category: entity.CategoryBankTransfer, MethodCode: "BANK", ProviderCode: "ubp", DisplayName: "UnionBank", Status: entity.EntryStatusEnabled},
				},
			},
			{
				Category: entity.CategoryEWallet,
				Entries: []entity.MethodCatalogEntry{
					{Category: entity.CategoryEWallet, MethodCode: "WALLET", ProviderCode: "gcash", DisplayName: "GCash", Status: entity.EntryStatusDisabled},
				},
			},
			{
				Category: entity.CategoryQR,
				Entries: []entity.MethodCatalogEntry{
					{Category: entity.CategoryQR, MethodCode: "QR", ProviderCode: "bpi", DisplayName: "QR Ph", Status: entity.EntryStatusEnabled},
				},
			},
		},
	}
}

func TestParseCategory(t *testing.T) {
	t.Parallel()

	require.Equal(t, entity.CategoryBankTransfer, entity.ParseCategory("bank"))
	require.Equal(t, entity.CategoryBankTransfer, entity.ParseCategory("bank_transfer"))
	require.Equal(t, entity.CategoryOverTheCounter, entity.ParseCategory("otc"))
	require.Equal(t, entity.Category("crypto"), entity.ParseCategory("crypto"))
}

func TestParseEntryStatus(t *testing.T) {
	t.Parallel()

	require.Equal(t, entity.EntryStatusEnabled, entity.ParseEntryStatus("on"))
	require.Equal(t, entity.EntryStatusDisabled, entity.ParseEntryStatus("off"))
	require.Equal(t, entity.EntryStatusDisabled, entity.ParseEntryStatus("ON"))
	require.Equal(t, entity.EntryStatusDisabled, entity.ParseEntryStatus(""))
}

func TestCatalog_Categories(t *testing.T) {
	t.Parallel()

	states := testCatalog().Categories()
	require.Len(t, states, 4)

	require.True(t, states[0].Enabled)
	require.Equal(t, "visa", states[0].Default)

	require.True(t, states[1].Enabled)
	require.Equal(t, "bpi", states[1].Default, "first enabled entry, not first entry")

	require.False(t, states[2].Enabled)
	require.Empty(t, states[2].Default)
}

func TestCatalog_Select(t *testing.T) {
	t.Parallel()

	c := testCatalog()
	sel := entity.CheckoutSelection{
		Amount:       decimal.NewFromInt(500),
		Method:       entity.CategoryCard,
		SubSelection: "visa",
	}

	for _, method := range []entity.Category{
		entity.CategoryBankTransfer,
		entity.CategoryEWallet,
		entity.CategoryQR,
		entity.CategoryOnlineBanking,
		entity.CategoryCard,
	} {
		got := c.Select(sel, method)

		require.Equal(t, method, got.Method)
		require.True(t, sel.Amount.Equal(got.Amount))

		if got.SubSelection == "" {
			require.False(t, c.CategoryEnabled(method), "unresolved only when nothing is enabled in %s", method)
			continue
		}

		entry, err := c.Resolve(got, entity.ProviderCodes{})
		require.NoError(t, err)
		require.Equal(t, method, entry.Category)
		require.True(t, entry.Enabled())
	}

	require.Equal(t, "bpi", c.Select(sel, entity.CategoryBankTransfer).SubSelection)
}

func TestCatalog_Resolve(t *testing.T) {
	t.Parallel()

	c := testCatalog()

	for _, tt := range []struct {
		name    string
		sel     entity.CheckoutSelection
		want    entity.ProviderCodes
		wantErr bool
	}{
		{
			name: "bank by provider code",
			sel:  entity.CheckoutSelection{Method: entity.CategoryBankTransfer, SubSelection: "ubp"},
			want: entity.ProviderCodes{MethodCode: "BANK", ProviderCode: "ubp"},
		},
		{
			name: "bank by display name",
			sel:  entity.CheckoutSelection{Method: entity.CategoryBankTransfer, SubSelection: "BPI"},
			want: entity.ProviderCodes{MethodCode: "BANK", ProviderCode: "bpi"},
		},
		{
			name: "same provider code in another category",
			sel:  entity.CheckoutSelection{Method: entity.CategoryQR, SubSelection: "bpi"},
			want: entity.ProviderCodes{MethodCode: "QR", ProviderCode: "bpi"},
		},
		{
			name: "card through catalog",
			sel:  entity.CheckoutSelection{Method: entity.CategoryCard, SubSelection: "visa"},
			want: entity.ProviderCodes{MethodCode: "CARD", ProviderCode: "visa"},
		},
		{
			name:    "disabled entry",
			sel:     entity.CheckoutSelection{Method: entity.CategoryBankTransfer, SubSelection: "bdo"},
			wantErr: true,
		},
		{
			name:    "entry of another category",
			sel:     entity.CheckoutSelection{Method: entity.CategoryBankTransfer, SubSelection: "visa"},
			wantErr: true,
		},
		{
			name:    "unresolved selection",
			sel:     entity.CheckoutSelection{Method: entity.CategoryEWallet},
			wantErr: true,
		},
		{
			name:    "category missing from catalog",
			sel:     entity.CheckoutSelection{Method: entity.CategoryOverTheCounter, SubSelection: "7eleven"},
			wantErr: true,
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := c.Resolve(tt.sel, entity.ProviderCodes{})
			if tt.wantErr {
				require.ErrorIs(t, err, entity.ErrResolution)
				return
			}

			require.NoError(t, err)
			require.Equal(t, tt.want, got.Codes())

			again, err := c.Resolve(tt.sel, entity.ProviderCodes{})
			require.NoError(t, err)
			require.Equal(t, got, again)
		})
	}
}

func TestCatalog_Resolve_CardFallback(t *testing.T) {
	t.Parallel()

	noCard := entity.Catalog{Groups: testCatalog().Groups[1:]}
	sel := entity.CheckoutSelection{Method: entity.CategoryCard}

	_, err := noCard.Resolve(sel, entity.ProviderCodes{})
	require.ErrorIs(t, err, entity.ErrResolution)

	fallback := entity.ProviderCodes{MethodCode: "CARD", ProviderCode: "default"}

	got, err := noCard.Resolve(sel, fallback)
	require.NoError(t, err)
	require.Equal(t, fallback, got.Codes())

	// Fallback is ignored when the catalog has card providers.
	got, err = testCatalog().Resolve(entity.CheckoutSelection{Method: entity.CategoryCard, SubSelection: "visa"}, fallback)
	require.NoError(t, err)
	require.Equal(t, "visa", got.ProviderCode)
}

func TestCatalog_MethodName(t *testing.T) {
	t.Parallel()

	c := testCatalog()

	require.Equal(t, "BPI", c.MethodName(entity.ProviderCodes{MethodCode: "BANK", ProviderCode: "bpi"}))
	require.Equal(t, "QR Ph", c.MethodName(entity.ProviderCodes{MethodCode: "QR", ProviderCode: "bpi"}))
	require.Equal(t, "GCash", c.MethodName(entity.ProviderCodes{MethodCode: "WALLET", ProviderCode: "gcash"}))
	require.Empty(t, c.MethodName(entity.ProviderCodes{MethodCode: "BANK", ProviderCode: "nope"}))
	require.Empty(t, c.MethodName(entity.ProviderCodes{}))
}
