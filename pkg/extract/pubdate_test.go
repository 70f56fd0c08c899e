package extract

import "testing"

func TestExtractPublicationDate(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "header present",
			text: "DIARIO OFICIAL\nBogotá, D. C., jueves, 5 de enero de 2020\nContenido",
			want: "2020-01-05",
		},
		{
			name: "two digit day",
			text: "Bogotá, D. C., lunes, 23 de diciembre de 2019",
			want: "2019-12-23",
		},
		{
			name: "month case insensitive",
			text: "Bogotá, D. C., viernes, 7 de AGOSTO de 2021",
			want: "2021-08-07",
		},
		{
			name: "unaccented city from extraction artifacts",
			text: "Bogota, D. C., martes, 1 de marzo de 2022",
			want: "2022-03-01",
		},
		{
			name: "header absent",
			text: "DECRETO NÚMERO 1 DE 2020",
			want: "",
		},
		{
			name: "unknown month",
			text: "Bogotá, D. C., jueves, 5 de brumario de 2020",
			want: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractPublicationDate(tt.text); got != tt.want {
				t.Errorf("ExtractPublicationDate() = %q, want %q", got, tt.want)
			}
		})
	}
}
