// Package features copies JSON feature data files from a documentation source
// tree into the generated site after a build has finished.
//
// Layout consumed and produced:
//
//	<docs_dir>/features/*.json  ->  <site_dir>/features/*.json
//
// Only regular files directly inside the features directory whose names match
// *.json are copied. Destination files of the same name are overwritten and
// every other file under the destination is left alone. A missing source
// directory is the normal "no feature data" case and is not an error.
package features
