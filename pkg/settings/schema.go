package settings

import (
	"sync"

	"github.com/aretw0/remotefs/pkg/schema"
)

var (
	registryOnce sync.Once
	registry     *schema.Registry
)

// Registry returns the compiled remote_fs schema. It is built once for the
// process lifetime; the definition is maintained alongside the code, so a
// failure to compile is a programmer error and panics at first use.
func Registry() *schema.Registry {
	registryOnce.Do(func() {
		registry = schema.MustLoad(Definition())
	})
	return registry
}

// Definition is the canonical rule tree for a remote_fs configuration
// document: the resource group and location of the deployment, the managed
// disks to provision, and one or more named storage clusters with their SSH,
// networking, file-server and VM sizing options.
//
// Cluster names under storage_clusters and disk indices under vm_disk_map
// are user-chosen, so both are regex-keyed rather than enumerated.
func Definition() schema.Definition {
	return schema.Definition{
		"type": "map",
		"mapping": schema.Definition{
			"remote_fs": schema.Definition{
				"type":     "map",
				"required": true,
				"mapping": schema.Definition{
					"resource_group": schema.Definition{"type": "str"},
					"location":       schema.Definition{"type": "str", "required": true},
					"managed_disks":  managedDisksDefinition(),
					"storage_clusters": schema.Definition{
						"type": "map",
						"mapping": schema.Definition{
							"regex;(.+)": storageClusterDefinition(),
						},
					},
				},
			},
		},
	}
}

func managedDisksDefinition() schema.Definition {
	return schema.Definition{
		"type": "map",
		"mapping": schema.Definition{
			"resource_group": schema.Definition{"type": "str"},
			"sku": schema.Definition{
				"type": "str",
				"enum": []string{DiskSKUStandardLRS, DiskSKUPremiumLRS},
			},
			"disk_size_gb": schema.Definition{"type": "int"},
			"disk_names": schema.Definition{
				"type":     "seq",
				"sequence": schema.Definition{"type": "str"},
			},
		},
	}
}

func storageClusterDefinition() schema.Definition {
	return schema.Definition{
		"type": "map",
		"mapping": schema.Definition{
			"resource_group":  schema.Definition{"type": "str"},
			"hostname_prefix": schema.Definition{"type": "str", "required": true},
			"ssh": schema.Definition{
				"type":     "map",
				"required": true,
				"mapping": schema.Definition{
					"username":                   schema.Definition{"type": "str", "required": true},
					"ssh_public_key":             schema.Definition{"type": "str"},
					"ssh_public_key_data":        schema.Definition{"type": "str"},
					"ssh_private_key":            schema.Definition{"type": "str"},
					"generated_file_export_path": schema.Definition{"type": "str"},
				},
			},
			"public_ip": schema.Definition{
				"type": "map",
				"mapping": schema.Definition{
					"enabled": schema.Definition{"type": "bool"},
					"static":  schema.Definition{"type": "bool"},
				},
			},
			"virtual_network": schema.Definition{
				"type":     "map",
				"required": true,
				"mapping": schema.Definition{
					"name":           schema.Definition{"type": "str", "required": true},
					"resource_group": schema.Definition{"type": "str"},
					"existing_ok":    schema.Definition{"type": "bool"},
					"address_space":  schema.Definition{"type": "str"},
					// subnet itself is optional; its fields are only
					// enforced when the block is present.
					"subnet": schema.Definition{
						"type": "map",
						"mapping": schema.Definition{
							"name":           schema.Definition{"type": "str", "required": true},
							"address_prefix": schema.Definition{"type": "str", "required": true},
						},
					},
				},
			},
			"network_security":       networkSecurityDefinition(),
			"file_server":            fileServerDefinition(),
			"vm_count":               schema.Definition{"type": "int", "required": true},
			"vm_size":                schema.Definition{"type": "str", "required": true},
			"fault_domains":          schema.Definition{"type": "int"},
			"accelerated_networking": schema.Definition{"type": "bool"},
			"vm_disk_map": schema.Definition{
				"type": "map",
				"mapping": schema.Definition{
					"regex;([0-9]+)": schema.Definition{
						"type": "map",
						"mapping": schema.Definition{
							"disk_array": schema.Definition{
								"type":     "seq",
								"required": true,
								"sequence": schema.Definition{"type": "str"},
							},
							"filesystem": schema.Definition{
								"type":     "str",
								"required": true,
								"enum":     []string{"btrfs", "ext4", "ext3", "ext2"},
							},
							"raid_level": schema.Definition{"type": "int"},
						},
					},
				},
			},
		},
	}
}

func networkSecurityDefinition() schema.Definition {
	sourceList := schema.Definition{
		"type":     "seq",
		"sequence": schema.Definition{"type": "str"},
	}
	return schema.Definition{
		"type": "map",
		"mapping": schema.Definition{
			"ssh":       sourceList,
			"nfs":       sourceList,
			"glusterfs": sourceList,
			"smb":       sourceList,
			"custom_inbound_rules": schema.Definition{
				"type": "map",
				"mapping": schema.Definition{
					"regex;(.+)": schema.Definition{
						"type": "map",
						"mapping": schema.Definition{
							"destination_port_range": schema.Definition{"type": "str", "required": true},
							"source_address_prefix": schema.Definition{
								"type":     "seq",
								"required": true,
								"sequence": schema.Definition{"type": "str"},
							},
							"protocol": schema.Definition{
								"type": "str",
								"enum": []string{"*", "tcp", "udp"},
							},
						},
					},
				},
			},
		},
	}
}

func fileServerDefinition() schema.Definition {
	return schema.Definition{
		"type": "map",
		"mapping": schema.Definition{
			"type": schema.Definition{
				"type":     "str",
				"required": true,
				"enum":     []string{"nfs", "glusterfs"},
			},
			"mountpoint": schema.Definition{"type": "str", "required": true},
			"mount_options": schema.Definition{
				"type":     "seq",
				"sequence": schema.Definition{"type": "str"},
			},
			// server_options carries a different shape per file server
			// type; the sibling "type" field selects which one applies.
			"server_options": schema.Definition{
				"type": "map",
				"tag":  "type",
				"cases": schema.Definition{
					"nfs": schema.Definition{
						"type": "map",
						"mapping": schema.Definition{
							// Export options per client host spec, e.g.
							// "*": [rw, sync, root_squash].
							"nfs": schema.Definition{
								"type": "map",
								"mapping": schema.Definition{
									"regex;(.+)": schema.Definition{
										"type":     "seq",
										"sequence": schema.Definition{"type": "str"},
									},
								},
							},
						},
					},
					"glusterfs": schema.Definition{
						"type": "map",
						"mapping": schema.Definition{
							"glusterfs": schema.Definition{
								"type": "map",
								"mapping": schema.Definition{
									"volume_name": schema.Definition{"type": "str"},
									"volume_type": schema.Definition{"type": "str"},
									"transport": schema.Definition{
										"type": "str",
										"enum": []string{"tcp"},
									},
									// Arbitrary volume tuning options such
									// as performance.cache-size.
									"regex;(.+)": schema.Definition{"type": "str"},
								},
							},
						},
					},
				},
			},
			// samba is validated whenever present, independent of the
			// file server type; the schema deliberately does not
			// cross-check the two.
			"samba": schema.Definition{
				"type": "map",
				"mapping": schema.Definition{
					"share_name": schema.Definition{"type": "str", "required": true},
					"account": schema.Definition{
						"type": "map",
						"mapping": schema.Definition{
							"username": schema.Definition{"type": "str", "required": true},
							"password": schema.Definition{"type": "str", "required": true},
							"uid":      schema.Definition{"type": "int"},
							"gid":      schema.Definition{"type": "int"},
						},
					},
					"read_only":      schema.Definition{"type": "bool"},
					"create_mask":    schema.Definition{"type": "str"},
					"directory_mask": schema.Definition{"type": "str"},
				},
			},
		},
	}
}
