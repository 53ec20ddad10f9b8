package utils

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/cafeandino/encuestas-api/internal/domain/entities"
)

// EncuestasACSV serializa un listado de encuestas ya filtradas a CSV. Es una
// conveniencia de exportación sobre filas ya consultadas, sin garantías de
// compatibilidad de formato.
func EncuestasACSV(encuestas []entities.Encuesta) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{"id", "fecha_aplicacion", "tipo_encuesta", "finca", "completada", "respuestas", "observaciones"}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	for _, e := range encuestas {
		row := []string{
			strconv.FormatUint(uint64(e.ID), 10),
			e.FechaAplicacion.Format("2006-01-02"),
			e.TipoEncuesta.Nombre,
			e.Finca.Nombre,
			strconv.FormatBool(e.Completada),
			strconv.Itoa(len(e.Respuestas)),
			e.Observaciones,
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
