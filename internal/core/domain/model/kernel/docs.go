// Package kernel contains shared value objects used across the parcel domain
// model. These are small immutable types with exact arithmetic semantics:
//
//   - Money: a monetary amount in hundredths of a currency unit, so tariff
//     math never touches floating point
//   - Weight: a parcel weight in grams, parsed leniently from form input
//   - ParcelID: the "PKG-" prefixed unique identifier of a staged parcel order
//
// Money and Weight treat their zero values as valid zero amounts; ParcelID
// follows the constructor pattern and is only valid when produced by a
// factory function.
package kernel
