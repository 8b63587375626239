package service

import (
	"fmt"
	"math"
	"strconv"
	"time"

	helper "capsmanizales_backend/internals/helpers"
)

// =======================================================
// Coerciones de los valores crudos del JSON del móvil.
// sonic decodifica números como float64 y todo lo demás
// como string/bool/nil; estas funciones llevan eso a los
// tipos de columna. Un valor incoercible es un error del
// registro, nunca del lote.
// =======================================================

func asString(campo string, v any) (string, error) {
	switch x := v.(type) {
	case nil:
		return "", nil
	case string:
		return x, nil
	case float64:
		if x == math.Trunc(x) {
			return strconv.FormatInt(int64(x), 10), nil
		}
		return strconv.FormatFloat(x, 'f', -1, 64), nil
	case bool:
		if x {
			return "1", nil
		}
		return "0", nil
	}
	return "", fmt.Errorf("campo %s: se esperaba texto, llegó %T", campo, v)
}

func asStringPtr(campo string, v any) (*string, error) {
	if v == nil {
		return nil, nil
	}
	s, err := asString(campo, v)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func asInt(campo string, v any) (int, error) {
	switch x := v.(type) {
	case nil:
		return 0, nil
	case float64:
		if x != math.Trunc(x) {
			return 0, fmt.Errorf("campo %s: %v no es entero", campo, x)
		}
		return int(x), nil
	case string:
		if x == "" {
			return 0, nil
		}
		n, err := strconv.Atoi(x)
		if err != nil {
			return 0, fmt.Errorf("campo %s: %q no es entero", campo, x)
		}
		return n, nil
	case bool:
		if x {
			return 1, nil
		}
		return 0, nil
	}
	return 0, fmt.Errorf("campo %s: se esperaba entero, llegó %T", campo, v)
}

func asIntPtr(campo string, v any) (*int, error) {
	if v == nil {
		return nil, nil
	}
	n, err := asInt(campo, v)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func asUint(campo string, v any) (uint, error) {
	n, err := asInt(campo, v)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, fmt.Errorf("campo %s: %d es negativo", campo, n)
	}
	return uint(n), nil
}

func asUintPtr(campo string, v any) (*uint, error) {
	if v == nil {
		return nil, nil
	}
	n, err := asUint(campo, v)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func asFloat(campo string, v any) (float64, error) {
	switch x := v.(type) {
	case nil:
		return 0, nil
	case float64:
		return x, nil
	case string:
		if x == "" {
			return 0, nil
		}
		f, err := strconv.ParseFloat(x, 64)
		if err != nil {
			return 0, fmt.Errorf("campo %s: %q no es numérico", campo, x)
		}
		return f, nil
	}
	return 0, fmt.Errorf("campo %s: se esperaba numérico, llegó %T", campo, v)
}

func asFloatPtr(campo string, v any) (*float64, error) {
	if v == nil {
		return nil, nil
	}
	f, err := asFloat(campo, v)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func asBoolPtr(campo string, v any) (*bool, error) {
	switch x := v.(type) {
	case nil:
		return nil, nil
	case bool:
		return &x, nil
	case float64:
		b := x != 0
		return &b, nil
	case string:
		switch x {
		case "", "null":
			return nil, nil
		case "true", "1":
			b := true
			return &b, nil
		case "false", "0":
			b := false
			return &b, nil
		}
	}
	return nil, fmt.Errorf("campo %s: se esperaba booleano, llegó %v", campo, v)
}

func asFecha(campo string, v any) (time.Time, error) {
	s, ok := v.(string)
	if !ok || s == "" {
		return time.Time{}, fmt.Errorf("campo %s: fecha requerida", campo)
	}
	t, err := helper.ParseFechaISO(s)
	if err != nil {
		return time.Time{}, fmt.Errorf("campo %s: %v", campo, err)
	}
	return helper.SoloFecha(t), nil
}

func asFechaPtr(campo string, v any) (*time.Time, error) {
	if v == nil {
		return nil, nil
	}
	if s, ok := v.(string); ok && s == "" {
		return nil, nil
	}
	t, err := asFecha(campo, v)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
