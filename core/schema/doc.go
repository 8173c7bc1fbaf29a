/*
Package schema defines declarative message definitions: the payload types an
event-driven service sends and receives, described as named field lists in
YAML. Definitions are the registration-based alternative to reflecting over
Go payload structs; both produce the same type descriptors and therefore the
same generated document.

A minimal message definition:

	message: OrderCreated
	fields:
	  id:         { type: uuid }
	  amount:     { type: number }
	  name:       string
	  birth_date: { type: date, nullable: true }
	  tags:       { type: array, items: string }
	  attributes: { type: map, key: string, value: string }
	  customer:   { type: ref, to: Customer }

Scalar field values are shorthand for `{ type: <value> }`.

# Field Types

  - string, bytes:           textual values
  - bool:                    boolean
  - int, long:               integer family
  - float, number, decimal:  floating-point family
  - uuid:                    string with uuid format
  - date:                    calendar date (format date)
  - timestamp:               instant in time (format date-time)
  - array:                   sequence, requires items
  - map:                     associative map, requires key and value
  - ref:                     another message definition, requires to
*/
package schema
