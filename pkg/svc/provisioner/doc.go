// Package provisioner provides cluster provisioning services.
//
//   - cluster: the ClusterProvisioner contract and its kind implementation
package provisioner
