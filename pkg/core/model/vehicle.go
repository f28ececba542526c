// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package model defines the inner most layer of the Clean Architecture
// containing the business-level models, also called entities or domain.
// This layer may not depend on outter layers, while all other layers
// may depend on it.
// Models in this package are transient values which live as long as
// a single call. They are never mutated after their construction.
package model

import "fmt"

// Describer is implemented by entities which can describe themselves
// with a human readable line of text.
type Describer interface {
	Info() string
}

// Vehicle models a named and dated transport entity.
// Its fields are unexported, so a Vehicle may only be created by the
// NewVehicle function and remains immutable afterwards.
type Vehicle struct {
	make string // manufacturer name
	year int    // production year
}

// NewVehicle instantiates a Vehicle with the given make and year.
// No validation is performed on the arguments.
func NewVehicle(make string, year int) Vehicle {
	return Vehicle{make: make, year: year}
}

// Make returns the manufacturer name of v.
func (v Vehicle) Make() string {
	return v.make
}

// Year returns the production year of v.
func (v Vehicle) Year() int {
	return v.year
}

// Info returns the "Make: <make>, Year: <year>" description of v.
func (v Vehicle) Info() string {
	return fmt.Sprintf("Make: %s, Year: %d", v.make, v.year)
}

// Car is a Vehicle which additionally carries a model designation.
// It embeds a Vehicle value, so the make and year are kept by the
// Vehicle and its Info method is promoted as is. A Car only adds the
// Model method and never overrides Info.
type Car struct {
	Vehicle

	model string
}

// NewCar instantiates a Car, delegating the make and year storage to
// an embedded Vehicle.
func NewCar(make string, year int, model string) Car {
	return Car{Vehicle: NewVehicle(make, year), model: model}
}

// Model returns the "Model: <model>" description of c.
func (c Car) Model() string {
	return "Model: " + c.model
}

// Designation returns the raw model name of c.
func (c Car) Designation() string {
	return c.model
}
