package constvars

const (
	URLParamPatientID = "patient_id"
)
