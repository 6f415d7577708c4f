// Package docs Gridref Microservice API.
//
// Микросервис преобразования геопространственных координат.
// Предоставляет API для работы с тайлами Web Mercator (XYZ), проекцией UTM
// и ссылками MGRS, а также для конвертации геометрий GeoJSON в WKT.
//
// Основные возможности:
// - Преобразование тайловых координат XYZ в широту/долготу и обратно
// - Прямая и обратная проекция UTM (WGS84)
// - Кодирование и декодирование ссылок MGRS с настраиваемой точностью
// - Оценка географических границ тайлов и квадратов MGRS
// - Конвертация геометрий GeoJSON в WKT
//
//	Schemes: http, https
//	BasePath: /
//	Version: 1.0.0
//
//	Consumes:
//	- application/json
//
//	Produces:
//	- application/json
//
// swagger:meta
package docs
