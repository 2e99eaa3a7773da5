package equity

import "testing"

func TestMoneyArithmetic(t *testing.T) {
	a, b := BRL(10.50), BRL(2.25)
	if got := a.Add(b); !got.Equal(BRL(12.75)) {
		t.Errorf("Add = %s, want R$12.75", got)
	}
	if got := a.Sub(b); !got.Equal(BRL(8.25)) {
		t.Errorf("Sub = %s, want R$8.25", got)
	}
	if got := a.MulFloat(2); !got.Equal(BRL(21.0)) {
		t.Errorf("MulFloat = %s, want R$21.00", got)
	}
	if got := BRL(32.50).Ratio(BRL(4.0)); got != 8.125 {
		t.Errorf("Ratio = %v, want 8.125", got)
	}
	if got := a.Ratio(BRL(0.0)); got != 0 {
		t.Errorf("Ratio by zero = %v, want 0", got)
	}
}

func TestMoneyWeakCurrency(t *testing.T) {
	// the empty currency merges with anything
	got := Money{}.Add(BRL(5.0))
	if got.Currency() != "BRL" {
		t.Errorf("Currency() = %q, want BRL", got.Currency())
	}

	defer func() {
		if recover() == nil {
			t.Error("mixing currencies did not panic")
		}
	}()
	M(1.0, "USD").Add(BRL(1.0))
}

func TestPercentString(t *testing.T) {
	if got := Percent(0.0575).String(); got != "5.75%" {
		t.Errorf("String() = %q, want 5.75%%", got)
	}
	if got := Percent(-0.012).SignedString(); got != "-1.20%" {
		t.Errorf("SignedString() = %q, want -1.20%%", got)
	}
	if got := Percent(0).SignedString(); got != "-" {
		t.Errorf("SignedString(0) = %q, want -", got)
	}
}
