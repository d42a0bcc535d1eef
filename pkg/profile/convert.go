package profile

// percentSteps is the institutional percentage→GPA conversion scale.
// Buckets are half-open: [min of row, min of previous row).
var percentSteps = []struct {
	min float64
	gpa float64
}{
	{97, 4.0},
	{93, 3.7},
	{90, 3.3},
	{87, 3.0},
	{83, 2.7},
	{80, 2.3},
	{77, 2.0},
	{73, 1.7},
	{70, 1.3},
	{67, 1.0},
	{65, 0.7},
	{60, 0.5},
}

// PercentageToGPA converts a percentage in [0,100] to the 4.0 scale using the
// fixed monotonic step table. Values below 60 map to 0.0.
func PercentageToGPA(percentage float64) float64 {
	for _, step := range percentSteps {
		if percentage >= step.min {
			return step.gpa
		}
	}
	return 0.0
}

// GPAToPercentage is the display inverse of PercentageToGPA: it returns the
// lower bound of the percentage bucket for the given GPA. The two functions
// must stay consistent: converting a bucket boundary there and back lands on
// the same bucket.
func GPAToPercentage(gpa float64) float64 {
	for _, step := range percentSteps {
		if gpa >= step.gpa {
			return step.min
		}
	}
	return 60.0
}
