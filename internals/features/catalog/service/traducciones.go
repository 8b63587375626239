package service

import (
	"strconv"
	"strings"

	"gorm.io/gorm"

	"capsmanizales_backend/internals/features/catalog/model"
	authModel "capsmanizales_backend/internals/features/users/auth/model"
)

// Traducciones es el caché de tablas de código cargado una vez por request.
// Nunca consulta la base por fila: seis SELECT al construirse y lookups O(1)
// después. Un id desconocido o nulo traduce a cadena vacía, jamás a error.
type Traducciones struct {
	opciones    map[uint]string
	comunas     map[uint]string
	barrios     map[uint]string
	tiposDoc    map[uint]string
	oficinas    map[uint]string
	profesiones map[uint]string
}

func CargarTraducciones(db *gorm.DB) (*Traducciones, error) {
	t := &Traducciones{
		opciones:    map[uint]string{},
		comunas:     map[uint]string{},
		barrios:     map[uint]string{},
		tiposDoc:    map[uint]string{},
		oficinas:    map[uint]string{},
		profesiones: map[uint]string{},
	}

	var opciones []model.ApsCueOpcionModel
	if err := db.Find(&opciones).Error; err != nil {
		return nil, err
	}
	for _, o := range opciones {
		t.opciones[o.ID] = o.Descripcion
	}

	var comunas []model.BaseComunaCorregimientoModel
	if err := db.Find(&comunas).Error; err != nil {
		return nil, err
	}
	for _, c := range comunas {
		t.comunas[c.ID] = c.Nombre
	}

	var barrios []model.BaseBarrioVeredaModel
	if err := db.Find(&barrios).Error; err != nil {
		return nil, err
	}
	for _, b := range barrios {
		t.barrios[b.ID] = b.Nombre
	}

	var tiposDoc []model.BaseTipoDocumentoModel
	if err := db.Find(&tiposDoc).Error; err != nil {
		return nil, err
	}
	for _, td := range tiposDoc {
		t.tiposDoc[td.ID] = td.Tipo
	}

	var oficinas []authModel.AuthOficinaModel
	if err := db.Find(&oficinas).Error; err != nil {
		return nil, err
	}
	for _, o := range oficinas {
		t.oficinas[o.ID] = o.Nombre
	}

	var profesiones []authModel.ComProfesionModel
	if err := db.Find(&profesiones).Error; err != nil {
		return nil, err
	}
	for _, p := range profesiones {
		t.profesiones[p.ID] = p.Tipo
	}

	return t, nil
}

func lookup(m map[uint]string, id *uint) string {
	if id == nil || *id == 0 {
		return ""
	}
	return m[*id]
}

func (t *Traducciones) Opcion(id *uint) string        { return lookup(t.opciones, id) }
func (t *Traducciones) Comuna(id *uint) string        { return lookup(t.comunas, id) }
func (t *Traducciones) Barrio(id *uint) string        { return lookup(t.barrios, id) }
func (t *Traducciones) TipoDocumento(id *uint) string { return lookup(t.tiposDoc, id) }
func (t *Traducciones) Oficina(id *uint) string       { return lookup(t.oficinas, id) }
func (t *Traducciones) Profesion(id *uint) string     { return lookup(t.profesiones, id) }

// OpcionID es la variante para ids no-nullables.
func (t *Traducciones) OpcionID(id uint) string {
	if id == 0 {
		return ""
	}
	return t.opciones[id]
}

// DescripcionesDesdeIDs traduce campos tipo "1,4,9": cada token numérico pasa
// por el caché de opciones; los tokens no numéricos se descartan en silencio.
func (t *Traducciones) DescripcionesDesdeIDs(idsCSV string) []string {
	descripciones := []string{}
	if strings.TrimSpace(idsCSV) == "" {
		return descripciones
	}
	for _, token := range strings.Split(idsCSV, ",") {
		token = strings.TrimSpace(token)
		n, err := strconv.Atoi(token)
		if err != nil || n < 0 {
			continue
		}
		if desc, ok := t.opciones[uint(n)]; ok {
			descripciones = append(descripciones, desc)
		}
	}
	return descripciones
}
