package errors

import "testing"

func TestValidateColumns(t *testing.T) {
	tests := []struct {
		name    string
		columns int
		wantErr bool
	}{
		{name: "positive", columns: 3, wantErr: false},
		{name: "one", columns: 1, wantErr: false},
		{name: "zero", columns: 0, wantErr: true},
		{name: "negative", columns: -2, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateColumns(tt.columns)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateColumns(%d) error = %v, wantErr %v", tt.columns, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidInput) {
				t.Errorf("error code = %v, want %v", GetCode(err), ErrCodeInvalidInput)
			}
		})
	}
}

func TestValidatePageWidth(t *testing.T) {
	tests := []struct {
		name    string
		width   int
		wantErr bool
	}{
		{name: "positive", width: 200, wantErr: false},
		{name: "one", width: 1, wantErr: false},
		{name: "zero", width: 0, wantErr: true},
		{name: "negative", width: -100, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePageWidth(tt.width)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePageWidth(%d) error = %v, wantErr %v", tt.width, err, tt.wantErr)
			}
		})
	}
}

func TestValidateQuality(t *testing.T) {
	tests := []struct {
		name    string
		quality int
		wantErr bool
	}{
		{name: "default", quality: 95, wantErr: false},
		{name: "minimum", quality: 1, wantErr: false},
		{name: "maximum", quality: 100, wantErr: false},
		{name: "zero", quality: 0, wantErr: true},
		{name: "too high", quality: 101, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateQuality(tt.quality)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateQuality(%d) error = %v, wantErr %v", tt.quality, err, tt.wantErr)
			}
		})
	}
}
