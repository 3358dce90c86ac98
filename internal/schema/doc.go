// Package schema loads NC-Link device descriptions into node trees.
//
// A description is a YAML document (JSON is accepted as well) naming the
// device, its configs, data items, nested components and sample channels:
//
//	id: dev-1
//	type: CNC1
//	name: Lathe
//	version: "1.0"
//	guid: 5f1c...
//	configs:
//	  - {id: cfg-1, type: MACHINE_TYPE, name: Machine type, valueType: string, value: lathe}
//	components:
//	  - id: cp-1
//	    type: AXIS
//	    number: "0"
//	    dataItems:
//	      - {id: di-1, type: POSITION, name: Position, dataType: FLOAT}
//	sampleChannels:
//	  - {id: sc-1, type: SAMPLE, name: Fast, sampleInterval: 100, uploadInterval: 1000, ids: [di-1]}
//
// The loader assembles the tree top-down, registers every node in the device
// dictionary and builds the id/path maps, so the returned device is ready for
// lookups.
package schema
