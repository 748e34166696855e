package form

import "testing"

func TestDefaults(t *testing.T) {
	v := Defaults()
	if v.TaxRate != DefaultTaxRatePercent {
		t.Fatalf("expected tax rate %d, got %d", DefaultTaxRatePercent, v.TaxRate)
	}
	if v.Departure.Address.Country != DefaultCountry || v.Arrival.Address.Country != DefaultCountry {
		t.Fatalf("expected country defaults, got %+v", v)
	}
	if v.Priority != DefaultPriority {
		t.Fatalf("expected priority %q, got %q", DefaultPriority, v.Priority)
	}
	if v.Items == nil || v.Attachments == nil {
		t.Fatalf("expected fully shaped slices, got %+v", v)
	}
}

func TestClone(t *testing.T) {
	v := Defaults()
	v.Client.Name = "Dupont"
	v.Items = append(v.Items, LineItemInput{Description: "Convoyage", Quantity: 1, UnitPrice: "150.00"})

	c := v.Clone()
	c.Client.Name = "Martin"
	c.Items[0].Quantity = 9

	if v.Client.Name != "Dupont" {
		t.Fatalf("clone aliased the client group: %q", v.Client.Name)
	}
	if v.Items[0].Quantity != 1 {
		t.Fatalf("clone aliased the items slice: %+v", v.Items)
	}
}

func TestMerge(t *testing.T) {
	t.Run("empty overlay returns base", func(t *testing.T) {
		base := Defaults()
		base.Client.Name = "Dupont"
		got := Merge(base, nil)
		if got.Client.Name != "Dupont" {
			t.Fatalf("expected base unchanged, got %+v", got)
		}
	})

	t.Run("deep overlay keeps siblings", func(t *testing.T) {
		base := Defaults()
		base.Client.Phone = "0612345678"
		got := Merge(base, map[string]interface{}{
			"client": map[string]interface{}{"name": "Martin"},
		})
		if got.Client.Name != "Martin" {
			t.Fatalf("expected overlay applied, got %+v", got.Client)
		}
		if got.Client.Phone != "0612345678" {
			t.Fatalf("expected sibling preserved, got %+v", got.Client)
		}
		if got.Departure.Address.Country != DefaultCountry {
			t.Fatalf("expected untouched groups to keep defaults")
		}
	})

	t.Run("unknown keys are ignored", func(t *testing.T) {
		base := Defaults()
		got := Merge(base, map[string]interface{}{"bogus": 1})
		if got.TaxRate != DefaultTaxRatePercent {
			t.Fatalf("expected base shape preserved, got %+v", got)
		}
	})
}
