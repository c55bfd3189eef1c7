package weather

// MetricToImperial converts degrees Celsius to degrees Fahrenheit.
func MetricToImperial(c float64) float64 {
	return c*9/5 + 32
}

// ImperialToMetric converts degrees Fahrenheit to degrees Celsius.
func ImperialToMetric(f float64) float64 {
	return (f - 32) / 1.8
}

// Symbol returns the temperature unit letter for u. Anything that is not
// imperial is presented as Celsius.
func (u Units) Symbol() string {
	switch u {
	case UnitsImperial:
		return "F"
	default:
		return "C"
	}
}

// Convert expresses a temperature given in from units in u units.
func (u Units) Convert(temp float64, from Units) float64 {
	if from.Symbol() == u.Symbol() {
		return temp
	}
	if u == UnitsImperial {
		return MetricToImperial(temp)
	}
	return ImperialToMetric(temp)
}
