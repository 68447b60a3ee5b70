package repository

import "morais_erp/internal/infrastructure/database"

// TableSpecs lists every table the repositories use, honoring the same
// *_TABLE overrides as the constructors.
func TableSpecs() []database.TableSpec {
	return []database.TableSpec{
		{Name: getenvDefault("MATERIAL_ORDERS_TABLE", defaultOrdersTableName), Indexes: []string{"project_id"}},
		{Name: getenvDefault("ACCOUNTS_PAYABLE_TABLE", defaultPayablesTableName), Indexes: []string{"order_id"}},
		{Name: getenvDefault("ACCOUNTS_RECEIVABLE_TABLE", defaultReceivablesTableName)},
		{Name: getenvDefault("PROJECTS_TABLE", defaultProjectsTableName)},
		{Name: getenvDefault("SUPPLIERS_TABLE", defaultSuppliersTableName)},
		{Name: getenvDefault("CLIENTS_TABLE", defaultClientsTableName)},
		{Name: getenvDefault("MATERIALS_TABLE", defaultMaterialsTableName)},
	}
}
