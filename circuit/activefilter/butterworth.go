package activefilter

// butterworthTable lists the pole quality factors of the maximally flat
// response per order, in cascade order.
var butterworthTable = map[int][]float64{
	2: {0.7071},
	4: {0.5412, 1.3065},
	6: {0.5176, 0.7071, 1.9319},
	8: {0.5098, 0.6013, 0.9000, 2.5629},
}

// ButterworthQ returns the tabulated stage Q values for order, or nil when
// the order has no table entry.
func ButterworthQ(order int) []float64 {
	qs, ok := butterworthTable[order]
	if !ok {
		return nil
	}

	out := make([]float64, len(qs))
	copy(out, qs)

	return out
}

// Butterworth designs an order-N Butterworth cascade on capacitance.
//
// Supported orders are 2, 4, 6 and 8. Any other order, or a non-positive
// cutoff or capacitance, returns nil. Stages follow the table order.
func Butterworth(resp Response, order int, cutoff, capacitance float64) *Design {
	qs, ok := butterworthTable[order]
	if !ok || !validInputs(cutoff, capacitance) {
		return nil
	}

	stages := make([]Stage, 0, len(qs))
	for i, q := range qs {
		stages = append(stages, buildStage(i, resp, cutoff, capacitance, q))
	}

	return &Design{
		Family:      FamilyButterworth,
		Response:    resp,
		Order:       order,
		Cutoff:      cutoff,
		Capacitance: capacitance,
		Stages:      stages,
	}
}
