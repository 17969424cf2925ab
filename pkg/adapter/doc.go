/*
Package adapter translates foreign field schemas into canonical field definitions.

Two schema dialects are supported. Legacy table columns carry a column_type and a settings map; [TableColumnToField] maps
the type through a static table and the settings into canonical config keys. Portal (public form) fields use their own type
vocabulary and nest group and repeater nodes through children; [PortalFieldToDefinition] converts the tree recursively, up to
the container depth cap. Both conversions are total: any unrecognized foreign type becomes a text field.

Adapters only translate schema. Container values produced by portal schemas are bound, mutated and walked by the container
package exactly like canonical ones, so group and repeater semantics live in one place.

# Usage

	defs, err := adapter.LoadTableColumns(data, adapter.SniffFormat(data))
	if err != nil {
	        return err
	}
	if err := adapter.Validate(defs); err != nil {
	        log.Warn(err)
	}
*/
package adapter
