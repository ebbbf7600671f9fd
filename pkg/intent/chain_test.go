package intent

import (
	"context"
	"errors"
	"testing"
)

type fixedClassifier struct {
	label Intent
	err   error
}

func (f fixedClassifier) Classify(context.Context, string) (Intent, error) {
	return f.label, f.err
}

func TestChain(t *testing.T) {
	ctx := context.Background()
	backendErr := errors.New("down")

	tests := []struct {
		name    string
		chain   Chain
		want    Intent
		wantErr error
	}{
		{
			name:  "first match wins",
			chain: Chain{fixedClassifier{label: QueryDebtors}, fixedClassifier{label: LogTransaction}},
			want:  QueryDebtors,
		},
		{
			name:  "unknown falls through",
			chain: Chain{fixedClassifier{label: Unknown}, fixedClassifier{label: LogTransaction}},
			want:  LogTransaction,
		},
		{
			name:  "error falls through",
			chain: Chain{fixedClassifier{err: backendErr}, fixedClassifier{label: QueryTotalDebt}},
			want:  QueryTotalDebt,
		},
		{
			name:  "unknown after failed tail is clean",
			chain: Chain{fixedClassifier{label: Unknown}, fixedClassifier{err: backendErr}, fixedClassifier{label: Unknown}},
			want:  Unknown,
		},
		{
			name:    "all failed reports the error",
			chain:   Chain{fixedClassifier{err: backendErr}},
			want:    Unknown,
			wantErr: backendErr,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.chain.Classify(ctx, "anything")
			if got != tt.want {
				t.Errorf("label = %v, want %v", got, tt.want)
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("err = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
