package geo

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/gridref-microservice/internal/domain"
)

// Ошибки MGRS кодека. Ожидаемый плохой ввод никогда не паникует -
// сигнализируется через error.
var (
	// ErrOutOfCoverage - широта вне покрытия MGRS (>=84 или <-80)
	ErrOutOfCoverage = errors.New("latitude outside MGRS coverage")
	// ErrInvalidReference - синтаксически некорректная MGRS ссылка
	ErrInvalidReference = errors.New("invalid MGRS reference")
)

const (
	squareSize    = 100000.0  // сторона 100км квадрата, метры
	northingCycle = 2000000.0 // период повторения букв строк, метры
	maxCycles     = 10        // перебор циклов при декодировании
)

// Алфавиты колонок 100км квадратов, чередуются с периодом 3 зоны
var squareColumnSets = [3]string{
	"ABCDEFGH", // зоны 1, 4, 7, ...
	"JKLMNPQR", // зоны 2, 5, 8, ...
	"STUVWXYZ", // зоны 3, 6, 9, ...
}

// Алфавиты строк 100км квадратов по чётности зоны
const (
	squareRowsOdd  = "ABCDEFGHJKLMNPQRSTUV"
	squareRowsEven = "FGHJKLMNPQRSTUVABCDE"
)

// mgrsBand - широтный пояс MGRS
type mgrsBand struct {
	letter byte
	minLat float64
	maxLat float64
}

// 20 поясов от -80 до 84: девятнадцать по 8 градусов и X на 12.
// Буквы I и O пропущены.
var mgrsBands = []mgrsBand{
	{'C', -80, -72}, {'D', -72, -64}, {'E', -64, -56}, {'F', -56, -48},
	{'G', -48, -40}, {'H', -40, -32}, {'J', -32, -24}, {'K', -24, -16},
	{'L', -16, -8}, {'M', -8, 0}, {'N', 0, 8}, {'P', 8, 16},
	{'Q', 16, 24}, {'R', 24, 32}, {'S', 32, 40}, {'T', 40, 48},
	{'U', 48, 56}, {'V', 56, 64}, {'W', 64, 72}, {'X', 72, 84},
}

// GridBandLetter возвращает букву широтного пояса MGRS.
// ok=false для широт вне покрытия (>=84 или <-80).
func GridBandLetter(lat float64) (byte, bool) {
	if lat >= 84 || lat < -80 {
		return 0, false
	}
	for i := len(mgrsBands) - 1; i >= 0; i-- {
		if lat >= mgrsBands[i].minLat {
			return mgrsBands[i].letter, true
		}
	}
	return 0, false
}

// bandRange находит пояс по букве
func bandRange(letter byte) (mgrsBand, bool) {
	for _, b := range mgrsBands {
		if b.letter == letter {
			return b, true
		}
	}
	return mgrsBand{}, false
}

// HundredKmSquareID возвращает двухбуквенный идентификатор 100км квадрата.
// Колонка выбирается из одного из трёх алфавитов по (zone-1) mod 3,
// индекс зажимается в [0,7]; строка - из алфавита по чётности зоны,
// индекс floor(northing/100000) mod 20.
func HundredKmSquareID(zone int, easting, northing float64) string {
	cols := squareColumnSets[(zone-1)%3]

	colIndex := int((easting - falseEasting + 400000) / squareSize)
	if colIndex < 0 {
		colIndex = 0
	}
	if colIndex > 7 {
		colIndex = 7
	}

	rows := squareRowsOdd
	if zone%2 == 0 {
		rows = squareRowsEven
	}
	rowIndex := int(northing/squareSize) % 20

	return string([]byte{cols[colIndex], rows[rowIndex]})
}

// EncodeMGRS кодирует точку WGS84 в MGRS ссылку с заданной точностью 0..5.
// precision=0 даёт 5-символьную ссылку (зона+пояс+квадрат), каждая
// следующая ступень добавляет по одной цифре на ось. Субгридовые смещения
// усекаются, не округляются.
func EncodeMGRS(lat, lon float64, precision int) (string, error) {
	if precision < 0 || precision > 5 {
		return "", fmt.Errorf("%w: precision %d out of range 0..5", ErrInvalidReference, precision)
	}

	band, ok := GridBandLetter(lat)
	if !ok {
		return "", fmt.Errorf("%w: latitude %.6f", ErrOutOfCoverage, lat)
	}

	utm := LatLonToUTM(lat, lon)
	square := HundredKmSquareID(utm.Zone, utm.Easting, utm.Northing)
	base := fmt.Sprintf("%02d%c%s", utm.Zone, band, square)

	if precision == 0 {
		return base, nil
	}

	gridX := int(math.Mod(utm.Easting, squareSize))
	gridY := int(math.Mod(utm.Northing, squareSize))
	scale := 1
	for i := 0; i < 5-precision; i++ {
		scale *= 10
	}

	return fmt.Sprintf("%s%0*d%0*d", base, precision, gridX/scale, precision, gridY/scale), nil
}

// DecodeMGRS восстанавливает точку WGS84 из MGRS ссылки.
//
// Восточное смещение восстанавливается напрямую из позиции буквы колонки.
// Северное смещение неоднозначно: буквы строк повторяются каждые
// 2 000 000 м, поэтому перебираются кандидаты k=0..9 (для южного
// полушария northing зеркалируется как 10 000 000 - кандидат), каждый
// прогоняется через UTMToLatLon, и принимается первый, чья широта попала
// в диапазон пояса из ссылки. Если ни один не попал, берётся кандидат
// с широтой, ближайшей к середине пояса, и результат помечается
// Approximate - без этого fallback декодирование необратимо.
func DecodeMGRS(reference string) (domain.MGRSPosition, error) {
	ref := strings.ToUpper(strings.TrimSpace(reference))

	if len(ref) < 5 {
		return domain.MGRSPosition{}, fmt.Errorf("%w: too short %q", ErrInvalidReference, reference)
	}

	zone, err := strconv.Atoi(ref[:2])
	if err != nil || zone < 1 || zone > 60 {
		return domain.MGRSPosition{}, fmt.Errorf("%w: bad zone %q", ErrInvalidReference, ref[:2])
	}

	band, ok := bandRange(ref[2])
	if !ok {
		return domain.MGRSPosition{}, fmt.Errorf("%w: unknown band letter %q", ErrInvalidReference, string(ref[2]))
	}

	squareID := ref[3:5]
	numeric := ref[5:]

	// Без цифр - центр 100км квадрата
	gridX := squareSize / 2
	gridY := squareSize / 2
	if len(numeric) > 0 {
		if len(numeric)%2 != 0 {
			return domain.MGRSPosition{}, fmt.Errorf("%w: odd numeric suffix %q", ErrInvalidReference, numeric)
		}
		precision := len(numeric) / 2
		if precision > 5 {
			return domain.MGRSPosition{}, fmt.Errorf("%w: numeric suffix too long %q", ErrInvalidReference, numeric)
		}
		xPart, errX := strconv.Atoi(numeric[:precision])
		yPart, errY := strconv.Atoi(numeric[precision:])
		if errX != nil || errY != nil {
			return domain.MGRSPosition{}, fmt.Errorf("%w: non-numeric suffix %q", ErrInvalidReference, numeric)
		}
		scale := 1
		for i := 0; i < 5-precision; i++ {
			scale *= 10
		}
		gridX = float64(xPart * scale)
		gridY = float64(yPart * scale)
	}

	cols := squareColumnSets[(zone-1)%3]
	colIndex := strings.IndexByte(cols, squareID[0])
	if colIndex < 0 {
		return domain.MGRSPosition{}, fmt.Errorf("%w: invalid column letter %q", ErrInvalidReference, string(squareID[0]))
	}

	rows := squareRowsOdd
	if zone%2 == 0 {
		rows = squareRowsEven
	}
	rowIndex := strings.IndexByte(rows, squareID[1])
	if rowIndex < 0 {
		return domain.MGRSPosition{}, fmt.Errorf("%w: invalid row letter %q", ErrInvalidReference, string(squareID[1]))
	}

	hemisphere := HemisphereSouth
	if ref[2] >= 'N' {
		hemisphere = HemisphereNorth
	}

	baseX := falseEasting + float64(colIndex-4)*squareSize
	baseYInCycle := float64(rowIndex) * squareSize

	easting := baseX + gridX

	var best domain.MGRSPosition
	bestErr := math.Inf(1)
	found := false
	bandMid := (band.minLat + band.maxLat) / 2

	for cycle := 0; cycle < maxCycles; cycle++ {
		baseY := baseYInCycle + float64(cycle)*northingCycle
		if hemisphere == HemisphereSouth {
			baseY = falseNorthing - baseY
		}

		point := UTMToLatLon(zone, hemisphere, easting, baseY+gridY)

		if point.Lat >= band.minLat && point.Lat <= band.maxLat {
			return domain.MGRSPosition{Lat: point.Lat, Lon: point.Lon}, nil
		}

		if latErr := math.Abs(point.Lat - bandMid); latErr < bestErr {
			bestErr = latErr
			best = domain.MGRSPosition{Lat: point.Lat, Lon: point.Lon, Approximate: true}
			found = true
		}
	}

	if !found {
		return domain.MGRSPosition{}, fmt.Errorf("%w: no northing cycle candidate for %q", ErrInvalidReference, reference)
	}
	return best, nil
}
