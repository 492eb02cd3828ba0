package git

import "context"

// Clone clones a repository into params.TargetPath, creating its parent directories.
func (g *realGit) Clone(ctx context.Context, params CloneParams) (Result, error) {
	g.logger.Logf("Cloning %s into %s", params.RemoteURL, params.TargetPath)
	return g.engine.Run(ctx, CloneOperation(params.RemoteURL, params.TargetPath, params.Branch))
}
