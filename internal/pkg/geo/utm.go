package geo

import (
	"math"

	"github.com/gridref-microservice/internal/domain"
)

// Константы эллипсоида WGS84 и проекции UTM
const (
	wgs84A         = 6378137.0        // большая полуось
	wgs84ESq       = 0.00669437999014 // квадрат эксцентриситета
	utmK0          = 0.9996           // масштабный коэффициент UTM
	wgs84EPrimeSq  = 0.0067394967     // e'^2 = e^2/(1-e^2)
	falseEasting   = 500000.0
	falseNorthing  = 10000000.0
)

// Полушария UTM
const (
	HemisphereNorth = "N"
	HemisphereSouth = "S"
)

// utmZone определяет номер зоны UTM с учётом исключений
// для Норвегии и Шпицбергена.
func utmZone(lat, lon float64) int {
	zone := int((lon+180)/6) + 1

	if lat >= 56.0 && lat < 64.0 && lon >= 3.0 && lon < 12.0 {
		zone = 32
	} else if lat >= 72.0 && lat <= 84.0 && lon >= 0.0 {
		switch {
		case lon < 9.0:
			zone = 31
		case lon < 21.0:
			zone = 33
		case lon < 33.0:
			zone = 35
		case lon < 42.0:
			zone = 37
		}
	}

	return zone
}

// LatLonToUTM проецирует точку WGS84 в UTM. Используется усечённый ряд
// меридиональной дуги 6-го порядка (коэффициенты Снайдера для поперечной
// проекции Меркатора). Поведение при |lat|>84 не определено, UTM там
// не применим - вызывающая сторона должна избегать приполярных широт.
func LatLonToUTM(lat, lon float64) domain.UTMCoordinate {
	zone := utmZone(lat, lon)

	latRad := lat * math.Pi / 180.0
	lonRad := lon * math.Pi / 180.0
	lonOrigin := float64((zone-1)*6-180+3) * math.Pi / 180.0

	sinLat := math.Sin(latRad)
	cosLat := math.Cos(latRad)
	tanLat := math.Tan(latRad)

	n := wgs84A / math.Sqrt(1-wgs84ESq*sinLat*sinLat)
	t := tanLat * tanLat
	c := wgs84ESq * cosLat * cosLat / (1 - wgs84ESq)
	a := cosLat * (lonRad - lonOrigin)

	e2 := wgs84ESq
	m := wgs84A * ((1-e2/4-3*e2*e2/64-5*e2*e2*e2/256)*latRad -
		(3*e2/8+3*e2*e2/32+45*e2*e2*e2/1024)*math.Sin(2*latRad) +
		(15*e2*e2/256+45*e2*e2*e2/1024)*math.Sin(4*latRad) -
		(35*e2*e2*e2/3072)*math.Sin(6*latRad))

	easting := utmK0*n*(a+(1-t+c)*a*a*a/6+
		(5-18*t+t*t+72*c-58*wgs84EPrimeSq)*math.Pow(a, 5)/120) + falseEasting

	northing := utmK0 * (m + n*tanLat*(a*a/2+
		(5-t+9*c+4*c*c)*math.Pow(a, 4)/24+
		(61-58*t+t*t+600*c-330*wgs84EPrimeSq)*math.Pow(a, 6)/720))

	hemisphere := HemisphereNorth
	if lat < 0 {
		northing += falseNorthing
		hemisphere = HemisphereSouth
	}

	return domain.UTMCoordinate{
		Zone:       zone,
		Hemisphere: hemisphere,
		Easting:    easting,
		Northing:   northing,
	}
}

// UTMToLatLon - обратное преобразование через footprint latitude
// (ряд Крюгера с коэффициентами e1, J1-J4). Ряд усечённый, поэтому
// round-trip точен до долей метра, но не бит-в-бит.
func UTMToLatLon(zone int, hemisphere string, easting, northing float64) domain.Point {
	x := easting - falseEasting
	y := northing
	if hemisphere == HemisphereSouth {
		y -= falseNorthing
	}

	lonOrigin := float64((zone-1)*6-180+3) * math.Pi / 180.0

	e2 := wgs84ESq
	m := y / utmK0
	mu := m / (wgs84A * (1 - e2/4 - 3*e2*e2/64 - 5*e2*e2*e2/256))

	e1 := (1 - math.Sqrt(1-e2)) / (1 + math.Sqrt(1-e2))
	j1 := 3*e1/2 - 27*math.Pow(e1, 3)/32
	j2 := 21*e1*e1/16 - 55*math.Pow(e1, 4)/32
	j3 := 151 * math.Pow(e1, 3) / 96
	j4 := 1097 * math.Pow(e1, 4) / 512

	fp := mu + j1*math.Sin(2*mu) + j2*math.Sin(4*mu) + j3*math.Sin(6*mu) + j4*math.Sin(8*mu)

	sinFp := math.Sin(fp)
	cosFp := math.Cos(fp)
	tanFp := math.Tan(fp)

	ePrimeSq := e2 / (1 - e2)
	c1 := ePrimeSq * cosFp * cosFp
	t1 := tanFp * tanFp
	n1 := wgs84A / math.Sqrt(1-e2*sinFp*sinFp)
	r1 := wgs84A * (1 - e2) / math.Pow(1-e2*sinFp*sinFp, 1.5)
	d := x / (n1 * utmK0)

	lat := fp - (n1*tanFp/r1)*(d*d/2-
		(5+3*t1+10*c1-4*c1*c1-9*ePrimeSq)*math.Pow(d, 4)/24+
		(61+90*t1+298*c1+45*t1*t1-252*ePrimeSq-3*c1*c1)*math.Pow(d, 6)/720)

	lon := lonOrigin + (d-(1+2*t1+c1)*math.Pow(d, 3)/6+
		(5-2*c1+28*t1-3*c1*c1+8*ePrimeSq+24*t1*t1)*math.Pow(d, 5)/120)/cosFp

	return domain.Point{
		Lat: lat * 180.0 / math.Pi,
		Lon: lon * 180.0 / math.Pi,
	}
}
