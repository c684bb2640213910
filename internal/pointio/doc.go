// Package pointio reads labeled point lists and writes expanded rows.
//
// Input records are "label X Y Z" or "label,X,Y,Z"; commas and whitespace
// may be mixed. Output records are strict CSV, "label,X,Y,Z", with every
// coordinate formatted to three decimal places.
package pointio
