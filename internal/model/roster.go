package model

// CanonicalPosition 기준표의 보직 한 건
type CanonicalPosition struct {
	Category       string `json:"category"`
	Position       string `json:"position"`
	SourceRowIndex int    `json:"sourceRowIndex"` // 기준 시트의 0 기반 행 번호
}

// ActiveAppointment 현재 재직 중인 발령 한 건
type ActiveAppointment struct {
	Name     string `json:"name"`
	Position string `json:"position"`
	Period   string `json:"period"`
}
