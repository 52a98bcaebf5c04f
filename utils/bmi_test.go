package utils

import "testing"

func TestCalculateBMI(t *testing.T) {
	bmi, err := CalculateBMI(175, 80)
	if err != nil {
		t.Fatalf("CalculateBMI: %v", err)
	}
	if bmi < 26.1 || bmi > 26.2 {
		t.Errorf("bmi = %v, want ~26.12", bmi)
	}

	for _, tt := range []struct{ h, w float64 }{
		{0, 80}, {175, 0}, {30, 80}, {175, 500},
	} {
		if _, err := CalculateBMI(tt.h, tt.w); err == nil {
			t.Errorf("CalculateBMI(%v, %v) accepted implausible input", tt.h, tt.w)
		}
	}
}
