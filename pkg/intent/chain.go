package intent

import "context"

// Chain tries classifiers in order and returns the first label that is not
// Unknown. A classifier error falls through to the next classifier; the
// last error is reported only when every classifier failed.
type Chain []Classifier

func (c Chain) Classify(ctx context.Context, text string) (Intent, error) {
	var lastErr error
	for _, cl := range c {
		label, err := cl.Classify(ctx, text)
		if err != nil {
			lastErr = err
			continue
		}
		if label != Unknown {
			return label, nil
		}
		lastErr = nil
	}
	if lastErr != nil {
		return Unknown, lastErr
	}
	return Unknown, nil
}
