package domain

import "testing"

func TestClassify(t *testing.T) {
	cases := []struct {
		name     string
		oldStock int64
		newStock int64
		want     ChangeType
	}{
		{name: "first stock", oldStock: 0, newStock: 10, want: ChangeInitial},
		{name: "restock after sellout", oldStock: 0, newStock: 1, want: ChangeInitial},
		{name: "increase", oldStock: 5, newStock: 10, want: ChangeIncrease},
		{name: "decrease", oldStock: 10, newStock: 5, want: ChangeDecrease},
		{name: "sellout", oldStock: 5, newStock: 0, want: ChangeDecrease},
		{name: "no movement", oldStock: 5, newStock: 5, want: ChangeUpdate},
		{name: "zero to zero", oldStock: 0, newStock: 0, want: ChangeUpdate},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Classify(tc.oldStock, tc.newStock); got != tc.want {
				t.Fatalf("Classify(%d, %d) = %s, expected %s", tc.oldStock, tc.newStock, got, tc.want)
			}
		})
	}
}
