// Package catalog provides the shop-configuration aggregates that price
// lookups are resolved from: products grouped into categories, and stain
// treatments with their per-unit surcharges.
//
// The catalog is the source of a line item's reference price and stain
// surcharge at order-entry time. Orders capture those prices; later
// catalog changes never reprice existing orders.
package catalog
