package dashboard

import "github.com/shopspring/decimal"

// reconcile merges the order-derived and payment-derived bucket maps. Per
// bucket, a positive order amount wins outright; otherwise a positive
// payment amount fills in; otherwise the bucket is zero. The two sources
// are alternative views of the same money and are never summed.
func reconcile(orders, payments BucketMap) BucketMap {
	out := make(BucketMap, len(orders)+len(payments))
	for key := range orders {
		out[key] = pickBucket(orders[key], payments[key])
	}
	for key := range payments {
		if _, seen := orders[key]; seen {
			continue
		}
		out[key] = pickBucket(Bucket{}, payments[key])
	}
	return out
}

func pickBucket(order, payment Bucket) Bucket {
	if order.Amount.IsPositive() {
		return order
	}
	if payment.Amount.IsPositive() {
		return payment
	}
	return Bucket{Amount: decimal.Zero, Count: order.Count + payment.Count}
}
