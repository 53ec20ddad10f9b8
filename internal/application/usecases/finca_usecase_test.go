package usecases

import (
	"testing"

	"github.com/cafeandino/encuestas-api/internal/domain/apperr"
	"github.com/cafeandino/encuestas-api/internal/domain/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptrFloat(v float64) *float64 { return &v }

func TestValidarFinca(t *testing.T) {
	tests := []struct {
		name    string
		finca   entities.Finca
		wantErr bool
	}{
		{
			name:  "nombre solo es suficiente",
			finca: entities.Finca{Nombre: "La Esperanza"},
		},
		{
			name: "coordenadas válidas",
			finca: entities.Finca{
				Nombre:   "El Vergel",
				Latitud:  ptrFloat(4.711),
				Longitud: ptrFloat(-74.072),
			},
		},
		{
			name:    "nombre vacío se rechaza",
			finca:   entities.Finca{Nombre: "  "},
			wantErr: true,
		},
		{
			name:    "latitud fuera de rango se rechaza",
			finca:   entities.Finca{Nombre: "El Vergel", Latitud: ptrFloat(95)},
			wantErr: true,
		},
		{
			name:    "longitud fuera de rango se rechaza",
			finca:   entities.Finca{Nombre: "El Vergel", Longitud: ptrFloat(-181)},
			wantErr: true,
		},
		{
			name:  "una sola coordenada es válida",
			finca: entities.Finca{Nombre: "El Vergel", Latitud: ptrFloat(4.711)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidarFinca(&tt.finca)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, apperr.ErrValidacion)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
