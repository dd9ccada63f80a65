// Package angular provides angle units and the operations that only make
// sense for them: turn constants, trigonometry, wrapping into a canonical
// range, separations and sexagesimal (DMS/HMS) construction.
//
// Every function is generic over Unit, so it works in whatever angle unit
// the caller holds:
//
//	a := angular.NewDegrees(370)
//	angular.WrapSigned(a)                 // 10 Deg
//	angular.Sin(angular.NewRadians(1.0))  // 0.8414...
package angular
